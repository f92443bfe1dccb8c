package client

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-portal/models"
)

// ownerFlag registers -owner-token and returns a func that applies it, or
// fails when neither the flag nor the environment provides one.
func (a *App) ownerFlag(fs *flag.FlagSet) func() error {
	token := fs.String("owner-token", "", "owner JWT (default $"+envOwnerToken+")")
	return func() error {
		t := a.orEnv(*token, envOwnerToken)
		if t == "" {
			return ErrNoOwnerToken
		}
		a.portal.SetOwnerToken(t)
		return nil
	}
}

func (a *App) createLink(ctx context.Context, fs *flag.FlagSet, args []string) error {
	applyOwner := a.ownerFlag(fs)
	label := fs.String("label", "", "human-readable label")
	protected := fs.Bool("password", false, "protect the link with a generated password")
	expiresIn := fs.Duration("expires-in", 0, "link lifetime (e.g. 72h), 0 for none")
	if _, err := parse(fs, args, 0); err != nil {
		return err
	}
	if err := applyOwner(); err != nil {
		return err
	}

	req := models.CreateLinkRequest{Label: *label, PasswordProtected: *protected}
	if *expiresIn > 0 {
		expiresAt := time.Now().Add(*expiresIn).UTC()
		req.ExpiresAt = &expiresAt
	}

	created, err := a.portal.CreateLink(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id: %s\n", created.Link.ID)
	fmt.Fprintf(a.out, "token: %s\n", created.Link.Token)
	if created.Link.ExpiresAt != nil {
		fmt.Fprintf(a.out, "expires: %s\n", created.Link.ExpiresAt.Local().Format(time.RFC3339))
	}
	if created.Password != "" {
		fmt.Fprintf(a.out, "password: %s\n", created.Password)
	}

	return nil
}

func (a *App) rotatePassword(ctx context.Context, fs *flag.FlagSet, args []string) error {
	applyOwner := a.ownerFlag(fs)
	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}
	if err = applyOwner(); err != nil {
		return err
	}

	rotated, err := a.portal.RotatePassword(ctx, pos[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "password: %s\n", rotated.Password)
	return nil
}

func (a *App) setActive(active bool) func(ctx context.Context, fs *flag.FlagSet, args []string) error {
	return func(ctx context.Context, fs *flag.FlagSet, args []string) error {
		applyOwner := a.ownerFlag(fs)
		pos, err := parse(fs, args, 1)
		if err != nil {
			return err
		}
		if err = applyOwner(); err != nil {
			return err
		}

		if err = a.portal.SetActive(ctx, pos[0], active); err != nil {
			return err
		}

		state := "deactivated"
		if active {
			state = "activated"
		}
		fmt.Fprintf(a.out, "link %s %s\n", pos[0], state)
		return nil
	}
}
