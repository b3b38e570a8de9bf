// Package cli implements the small interactive console shipped with the
// auth-service. It drives the full service surface: registration, login,
// token validation, and activity scoring.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ecommerce/auth-service/internal/services"
)

type App struct {
	service *services.Service
	reader  *bufio.Reader
	out     io.Writer

	token string // last issued token, used by validate without an argument
}

func New(service *services.Service, in io.Reader, out io.Writer) *App {
	return &App{
		service: service,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run reads commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "auth-service console. Type 'help' for commands.")

	for {
		line, err := GetSimpleText(a.reader, "", a.out)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "register":
			a.register(ctx, args)
		case "login":
			a.login(ctx, args)
		case "validate":
			a.validate(args)
		case "whoami":
			a.whoami(ctx, args)
		case "score":
			a.score(ctx, args)
		case "exit", "quit":
			return nil
		default:
			fmt.Fprintf(a.out, "unknown command %q, try 'help'\n", cmd)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  register <email> <name...>  create an account (password prompted)
  login <email>               sign in and receive a token (password prompted)
  validate [token]            verify a token (defaults to the last one)
  whoami <email>              show a stored user
  score <email>               show a user's activity score
  exit
`)
}

func (a *App) register(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "usage: register <email> <name...>")
		return
	}
	email := args[0]
	name := strings.Join(args[1:], " ")

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user, err := a.service.Register(ctx, email, password, name)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "registered %s (id=%s)\n", user.Email, user.ID)
}

func (a *App) login(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: login <email>")
		return
	}
	email := args[0]

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	token, err := a.service.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.token = token

	// login succeeded, count it towards the activity score
	if user, err := a.service.GetUser(ctx, email); err == nil {
		if err := a.service.IncrementLogin(ctx, user); err != nil {
			fmt.Fprintf(a.out, "warning: could not record login: %v\n", err)
		}
	}

	fmt.Fprintf(a.out, "token: %s\n", token)
}

func (a *App) validate(args []string) {
	token := a.token
	if len(args) == 1 {
		token = args[0]
	}
	if token == "" {
		fmt.Fprintln(a.out, "no token yet, login first or pass one")
		return
	}

	claims, err := a.service.ValidateToken(token)
	if err != nil {
		fmt.Fprintf(a.out, "invalid: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "valid for %s (expires %s)\n", claims.Email, claims.ExpiresAt.Time)
}

func (a *App) whoami(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: whoami <email>")
		return
	}

	user, err := a.service.GetUser(ctx, args[0])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "%s <%s> logins=%d last activity=%s\n",
		user.Name, user.Email, user.LoginCount, user.LastActivity)
}

func (a *App) score(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: score <email>")
		return
	}

	user, err := a.service.GetUser(ctx, args[0])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "activity score for %s: %d\n", user.Email, a.service.ActivityScore(user))
}
