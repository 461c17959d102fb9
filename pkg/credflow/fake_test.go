package credflow

import (
	"context"
	"sync"

	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// fakeClient is a hand-rolled ServiceClient double. It counts every call,
// captures the last input per operation, and returns whatever outputs and
// errors the test configured.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int

	signUpOut *cip.SignUpOutput
	signUpErr error

	initiateAuthOut *cip.InitiateAuthOutput
	initiateAuthErr error

	adminInitiateAuthOut *cip.AdminInitiateAuthOutput
	adminInitiateAuthErr error

	confirmSignUpErr      error
	adminConfirmSignUpErr error

	adminCreateUserOut *cip.AdminCreateUserOutput
	adminCreateUserErr error

	adminSetUserPasswordErr      error
	adminUpdateUserAttributesErr error

	adminGetUserOut *cip.AdminGetUserOutput
	adminGetUserErr error

	revokeTokenErr error

	lastSignUp                    *cip.SignUpInput
	lastInitiateAuth              *cip.InitiateAuthInput
	lastAdminInitiateAuth         *cip.AdminInitiateAuthInput
	lastConfirmSignUp             *cip.ConfirmSignUpInput
	lastAdminConfirmSignUp        *cip.AdminConfirmSignUpInput
	lastAdminCreateUser           *cip.AdminCreateUserInput
	lastAdminSetUserPassword      *cip.AdminSetUserPasswordInput
	lastAdminUpdateUserAttributes *cip.AdminUpdateUserAttributesInput
	lastAdminGetUser              *cip.AdminGetUserInput
	lastRevokeToken               *cip.RevokeTokenInput
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: make(map[string]int)}
}

func (f *fakeClient) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeClient) SignUp(_ context.Context, params *cip.SignUpInput, _ ...func(*cip.Options)) (*cip.SignUpOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["SignUp"]++
	f.lastSignUp = params
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	if f.signUpOut != nil {
		return f.signUpOut, nil
	}
	return &cip.SignUpOutput{}, nil
}

func (f *fakeClient) InitiateAuth(_ context.Context, params *cip.InitiateAuthInput, _ ...func(*cip.Options)) (*cip.InitiateAuthOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["InitiateAuth"]++
	f.lastInitiateAuth = params
	if f.initiateAuthErr != nil {
		return nil, f.initiateAuthErr
	}
	if f.initiateAuthOut != nil {
		return f.initiateAuthOut, nil
	}
	return &cip.InitiateAuthOutput{}, nil
}

func (f *fakeClient) AdminInitiateAuth(_ context.Context, params *cip.AdminInitiateAuthInput, _ ...func(*cip.Options)) (*cip.AdminInitiateAuthOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["AdminInitiateAuth"]++
	f.lastAdminInitiateAuth = params
	if f.adminInitiateAuthErr != nil {
		return nil, f.adminInitiateAuthErr
	}
	if f.adminInitiateAuthOut != nil {
		return f.adminInitiateAuthOut, nil
	}
	return &cip.AdminInitiateAuthOutput{}, nil
}

func (f *fakeClient) ConfirmSignUp(_ context.Context, params *cip.ConfirmSignUpInput, _ ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["ConfirmSignUp"]++
	f.lastConfirmSignUp = params
	if f.confirmSignUpErr != nil {
		return nil, f.confirmSignUpErr
	}
	return &cip.ConfirmSignUpOutput{}, nil
}

func (f *fakeClient) AdminConfirmSignUp(_ context.Context, params *cip.AdminConfirmSignUpInput, _ ...func(*cip.Options)) (*cip.AdminConfirmSignUpOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["AdminConfirmSignUp"]++
	f.lastAdminConfirmSignUp = params
	if f.adminConfirmSignUpErr != nil {
		return nil, f.adminConfirmSignUpErr
	}
	return &cip.AdminConfirmSignUpOutput{}, nil
}

func (f *fakeClient) AdminCreateUser(_ context.Context, params *cip.AdminCreateUserInput, _ ...func(*cip.Options)) (*cip.AdminCreateUserOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["AdminCreateUser"]++
	f.lastAdminCreateUser = params
	if f.adminCreateUserErr != nil {
		return nil, f.adminCreateUserErr
	}
	if f.adminCreateUserOut != nil {
		return f.adminCreateUserOut, nil
	}
	return &cip.AdminCreateUserOutput{}, nil
}

func (f *fakeClient) AdminSetUserPassword(_ context.Context, params *cip.AdminSetUserPasswordInput, _ ...func(*cip.Options)) (*cip.AdminSetUserPasswordOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["AdminSetUserPassword"]++
	f.lastAdminSetUserPassword = params
	if f.adminSetUserPasswordErr != nil {
		return nil, f.adminSetUserPasswordErr
	}
	return &cip.AdminSetUserPasswordOutput{}, nil
}

func (f *fakeClient) AdminUpdateUserAttributes(_ context.Context, params *cip.AdminUpdateUserAttributesInput, _ ...func(*cip.Options)) (*cip.AdminUpdateUserAttributesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["AdminUpdateUserAttributes"]++
	f.lastAdminUpdateUserAttributes = params
	if f.adminUpdateUserAttributesErr != nil {
		return nil, f.adminUpdateUserAttributesErr
	}
	return &cip.AdminUpdateUserAttributesOutput{}, nil
}

func (f *fakeClient) AdminGetUser(_ context.Context, params *cip.AdminGetUserInput, _ ...func(*cip.Options)) (*cip.AdminGetUserOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["AdminGetUser"]++
	f.lastAdminGetUser = params
	if f.adminGetUserErr != nil {
		return nil, f.adminGetUserErr
	}
	if f.adminGetUserOut != nil {
		return f.adminGetUserOut, nil
	}
	return &cip.AdminGetUserOutput{}, nil
}

func (f *fakeClient) RevokeToken(_ context.Context, params *cip.RevokeTokenInput, _ ...func(*cip.Options)) (*cip.RevokeTokenOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["RevokeToken"]++
	f.lastRevokeToken = params
	if f.revokeTokenErr != nil {
		return nil, f.revokeTokenErr
	}
	return &cip.RevokeTokenOutput{}, nil
}
