package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Credentials for a console user.
type Credentials struct {
	Username string
	Password string
}

// Prompter asks for whatever part of the credentials is missing.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	// ReadSecret reads a line without echoing it.
	ReadSecret func() ([]byte, error)
}

// NewTerminalPrompter prompts on stdin/stderr and masks the password.
func NewTerminalPrompter() *Prompter {
	return &Prompter{
		In:  os.Stdin,
		Out: os.Stderr,
		ReadSecret: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
	}
}

// Complete fills in an empty username or password by prompting.
func (p *Prompter) Complete(c Credentials) (Credentials, error) {
	if c.Username == "" {
		fmt.Fprint(p.Out, "Username: ")
		line, err := bufio.NewReader(p.In).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return c, fmt.Errorf("read username: %w", err)
		}
		c.Username = strings.TrimSpace(line)
		if c.Username == "" {
			return c, errors.New("username is required")
		}
	}

	if c.Password == "" {
		fmt.Fprint(p.Out, "Password: ")
		secret, err := p.ReadSecret()
		fmt.Fprintln(p.Out)
		if err != nil {
			return c, fmt.Errorf("read password: %w", err)
		}
		c.Password = strings.TrimRight(string(secret), "\r\n")
	}

	return c, nil
}
