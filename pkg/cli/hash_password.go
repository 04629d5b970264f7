package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/usecase"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func cmdHashPassword() *cli.Command {
	return &cli.Command{
		Name:  "hash-password",
		Usage: "Read a password from stdin and print its bcrypt hash for the users file",
		Action: func(ctx context.Context, c *cli.Command) error {
			root := c.Root()

			password, err := readPassword(root.Reader, root.ErrWriter)
			if err != nil {
				return err
			}

			hash, err := usecase.HashPassword(password)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(root.Writer, hash)
			return err
		},
	}
}

// readPassword prompts without echo on a terminal and reads the first line
// otherwise
func readPassword(r io.Reader, prompt io.Writer) (string, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		first, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read password")
		}

		fmt.Fprint(prompt, "Confirm: ")
		second, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read password")
		}

		if string(first) != string(second) {
			return "", goerr.New("passwords do not match")
		}
		return string(first), nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", goerr.Wrap(err, "failed to read password")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
