package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-doc-portal/internal/adapter"
)

const stdoutPath = "-"

func (a *App) status(ctx context.Context, fs *flag.FlagSet, args []string) error {
	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	usability, err := a.portal.LinkStatus(ctx, pos[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "status: %s\n", usability.Status)
	if usability.Label != "" {
		fmt.Fprintf(a.out, "label: %s\n", usability.Label)
	}
	if usability.PasswordRequired {
		fmt.Fprintln(a.out, "password: required")
	}

	return nil
}

func (a *App) verify(ctx context.Context, fs *flag.FlagSet, args []string) error {
	password := fs.String("password", "", "link password (default $"+envPassword+")")
	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	pass := a.orEnv(*password, envPassword)
	if pass == "" {
		return ErrNoPassword
	}

	result, err := a.portal.VerifyPassword(ctx, pos[0], pass)
	switch {
	case errors.Is(err, adapter.ErrWrongPassword):
		fmt.Fprintf(a.out, "wrong password, %d attempt(s) remaining\n", result.RemainingAttempts)
		return err
	case errors.Is(err, adapter.ErrLocked):
		fmt.Fprintln(a.out, "link is locked, ask the owner for a new password")
		return err
	case err != nil:
		return err
	}

	fmt.Fprintf(a.out, "session expires at %s\n", result.Session.ExpiresAt.Local().Format(time.RFC3339))
	fmt.Fprintf(a.out, "export %s=%s\n", envSession, result.Session.Value)

	return nil
}

// sessionFlag registers -session and returns a func applying it to the adapter.
func (a *App) sessionFlag(fs *flag.FlagSet) func() {
	session := fs.String("session", "", "portal session token (default $"+envSession+")")
	return func() {
		if s := a.orEnv(*session, envSession); s != "" {
			a.portal.SetSession(s)
		}
	}
}

func (a *App) listFiles(ctx context.Context, fs *flag.FlagSet, args []string) error {
	applySession := a.sessionFlag(fs)
	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}
	applySession()

	files, err := a.portal.ListFiles(ctx, pos[0])
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(a.out, "no files")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tUPLOADED")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", f.Name, f.Size, f.UploadedAt.Local().Format(time.DateTime))
	}

	return tw.Flush()
}

func (a *App) putFile(ctx context.Context, fs *flag.FlagSet, args []string) error {
	applySession := a.sessionFlag(fs)
	name := fs.String("name", "", "name to store the file under (default: base name of <file>)")
	pos, err := parse(fs, args, 2)
	if err != nil {
		return err
	}
	applySession()

	f, err := os.Open(pos[1])
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	uploadName := *name
	if uploadName == "" {
		uploadName = filepath.Base(pos[1])
	}

	uploaded, err := a.portal.UploadFile(ctx, pos[0], uploadName, f)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "uploaded %s (%d bytes)\n", uploaded.Name, uploaded.Size)
	return nil
}

func (a *App) getFile(ctx context.Context, fs *flag.FlagSet, args []string) error {
	applySession := a.sessionFlag(fs)
	output := fs.String("o", "", `output path, "-" for stdout (default: the file name)`)
	pos, err := parse(fs, args, 2)
	if err != nil {
		return err
	}
	applySession()

	linkToken, name := pos[0], pos[1]

	if *output == stdoutPath {
		_, err = a.portal.DownloadFile(ctx, linkToken, name, a.out)
		return err
	}

	path := *output
	if path == "" {
		path = filepath.Base(name)
	}

	return a.downloadTo(ctx, linkToken, name, path)
}

// downloadTo writes the file to path, removing the partial file on failure.
func (a *App) downloadTo(ctx context.Context, linkToken, name, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	var n int64
	if n, err = a.portal.DownloadFile(ctx, linkToken, name, f); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "saved %s (%d bytes)\n", path, n)
	return nil
}
