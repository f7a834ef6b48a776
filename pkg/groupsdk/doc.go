/*
Package groupsdk provides a client for the kitty groups service and the
request/response types its HTTP API speaks.

Every call is made on behalf of the user whose access token the Client holds.
Tokens are minted by the BarTab auth service and must carry the groups:read
scope for reads and groups:write for mutations.

	c := groupsdk.NewClient("https://groups.example.com", accessToken)

	g, err := c.CreateGroup(ctx, groupsdk.CreateGroupRequest{Name: "Roommates"})
	inv, err := c.SendInvite(ctx, g.ID, groupsdk.SendInviteRequest{Email: "a@x.com"})

Failed calls return an *APIError. Use its Code (or errors.Is against the
predefined errors) to tell an expired invite from an unknown one:

	_, err := c.AcceptInvite(ctx, token)
	if errors.Is(err, groupsdk.ErrExpired) {
		// render the expired view
	}
*/
package groupsdk
