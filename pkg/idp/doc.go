// Package idp is the boundary to the external identity provider (AWS Cognito).
//
// ServiceClient names exactly the provider operations the credential flows use;
// the production implementation is the aws-sdk-go-v2 Cognito client, constructed
// by NewClient from the process ClientContext. NormalizeError maps provider and
// transport errors onto the gateway's failure taxonomy.
//
// The gateway never reimplements provider behavior. Challenge configuration for
// the custom-auth (passwordless) flow is an out-of-band precondition on the user
// pool, not something this package sets up.
package idp
