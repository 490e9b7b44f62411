// Package jwt provides access token utilities for the Chronicle API.
//
// Tokens are HS256-signed and carry the account ID and username. They
// deliberately do not carry the premium flag; account state is always
// resolved fresh by the caller.
//
// # Token Generation
//
//	service, err := jwt.NewService(jwt.Config{
//	    Secret:         "secret-key",
//	    Issuer:         "chronicle-api",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Generate(accountID, username)
//
// # Token Validation
//
//	accountID, username, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
package jwt
