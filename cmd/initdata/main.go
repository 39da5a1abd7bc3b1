// Command initdata prints a correctly signed Telegram Mini App launch payload
// for local testing with curl or an HTTP client.
//
// Usage:
//
//	initdata --user-id=279058397 --username=alice [--bot-token=TOKEN] [--auth-date=UNIX]
//
// The bot token defaults to TELEGRAM_BOT_TOKEN. Send the output in the
// X-Telegram-Init-Data header.
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/weektrack-backend/internal/auth"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, time.Now); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "initdata: %v\n", err)
		os.Exit(1)
	}
}

type launchUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

func run(args []string, stdout io.Writer, now func() time.Time) error {
	var (
		botToken  string
		userID    int64
		username  string
		firstName string
		authDate  int64
	)

	flagSet := pflag.NewFlagSet("initdata", pflag.ContinueOnError)
	flagSet.StringVar(&botToken, "bot-token", os.Getenv("TELEGRAM_BOT_TOKEN"), "bot token used to sign the payload")
	flagSet.Int64Var(&userID, "user-id", 0, "platform user id (required)")
	flagSet.StringVar(&username, "username", "", "platform username; omitted when empty")
	flagSet.StringVar(&firstName, "first-name", "Test", "first name shown in the payload")
	flagSet.Int64Var(&authDate, "auth-date", 0, "auth_date as unix seconds (default: now)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	if userID == 0 {
		fmt.Fprintln(os.Stderr, "Usage: initdata --user-id=ID [--username=NAME] [--bot-token=TOKEN]")
		return errUsage
	}
	if botToken == "" {
		return errors.New("bot token is required (--bot-token or TELEGRAM_BOT_TOKEN)")
	}
	if authDate == 0 {
		authDate = now().Unix()
	}

	user, err := json.Marshal(launchUser{ID: userID, FirstName: firstName, Username: username})
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	values := url.Values{}
	values.Set("user", string(user))
	values.Set("auth_date", strconv.FormatInt(authDate, 10))

	_, err = fmt.Fprintln(stdout, auth.Sign(values, botToken))
	return err
}
