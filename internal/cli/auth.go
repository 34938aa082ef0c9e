package cli

import (
	"context"
	"os"

	"github.com/caexamhub/caprep/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates the local
// account. Registering replaces any existing account, quiz history
// included; outcome messages arrive through the notification sink.
// The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.sessions.Register(ctx, email, password)
	return err
}

// Login prompts for credentials and authenticates against the stored
// record. The password buffer is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.sessions.Login(ctx, email, password)
	return err
}

// Logout ends the session. Saved resources survive; quiz history goes
// with the account record.
func (a *App) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}
