/*
Package authsdk provides a client SDK for the player auth service, plus the
request/response types shared between the SDK and the service's HTTP handlers.

# SDKClient vs Session

The package is organized around two types:

  - SDKClient: public operations (login, token verification, health probes)
  - Session: authenticated operations carrying a bearer access token

Create an SDKClient to talk to the service:

	client := authsdk.NewSDKClient("https://auth.example.com")

	// Anonymous player login
	resp, err := client.Login(ctx, authsdk.LoginRequest{
		Provider: "",
		Key:      "player-42",
		Role:     "user",
	})

	// Verify a token presented by a client
	identity, err := client.VerifyToken(ctx, resp.AccessToken)

Admin operations go through a Session. LoginSession wraps a successful login's
access token; it fails with ErrAccountLocked when the account is locked and no
token was issued:

	session, err := client.LoginSession(ctx, authsdk.LoginRequest{
		Provider: "github",
		Key:      authorizationCode,
		Context:  redirectURI,
		Role:     "admin",
	})

	page, err := session.ListPlayers(ctx, 0)
	key, err := session.GenerateSecretKey(ctx)
	_, err = session.LockPlayer(ctx, "", "player-42")

Game servers authenticate with a pre-shared key via provider "server":

	resp, err := client.Login(ctx, authsdk.LoginRequest{
		Provider: "server",
		Key:      sharedSecret,
		Role:     "server",
	})

# Token lifetime

Access tokens are long-lived JWTs (24h by default) and the service has no
refresh grant. When a token expires, authenticated calls fail with an
*APIError carrying code "invalid_token"; log in again to obtain a new one.

# Error handling

Server-side failures surface as *APIError values with a stable machine
readable Code ("invalid_credentials", "player_not_found", ...):

	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == authsdk.ErrorCodeInvalidCredentials {
		// wrong secret key, expired GitHub code, ...
	}
*/
package authsdk
