package validate

import (
	"context"
	"net/mail"
)

// UserLookup is the slice of the user store the registration validator needs
// for its email/username pre-checks. The checks run during validation, before
// any insert; they are advisory, not atomic with the insert.
type UserLookup interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type UserInput struct {
	Name     string
	Email    string
	Username string
	Password string
}

type SessionInput struct {
	Username string
	Password string
}

// UserCreation validates the registration payload. The returned error is for
// store failures during the existence checks only; shape problems come back
// as Errs.
func UserCreation(ctx context.Context, raw map[string]any, users UserLookup) (UserInput, Errs, error) {
	var in UserInput
	var errs Errs

	if s, ef := requiredString("name", raw["name"]); ef != nil {
		errs = append(errs, *ef)
	} else {
		in.Name = s
	}

	if s, ef := requiredString("email", raw["email"]); ef != nil {
		errs = append(errs, *ef)
	} else if _, err := mail.ParseAddress(s); err != nil {
		errs = append(errs, ErrField{Field: "email", Msg: "must be a valid email"})
	} else {
		exists, err := users.EmailExists(ctx, s)
		if err != nil {
			return in, nil, err
		}
		if exists {
			errs = append(errs, ErrField{Field: "email", Msg: "Email already exists"})
		}
		in.Email = s
	}

	if s, ef := requiredString("username", raw["username"]); ef != nil {
		errs = append(errs, *ef)
	} else if ef := minLen("username", s, 4); ef != nil {
		errs = append(errs, *ef)
	} else {
		exists, err := users.UsernameExists(ctx, s)
		if err != nil {
			return in, nil, err
		}
		if exists {
			errs = append(errs, ErrField{Field: "username", Msg: "Username already exists"})
		}
		in.Username = s
	}

	if s, ef := requiredString("password", raw["password"]); ef != nil {
		errs = append(errs, *ef)
	} else if ef := minLen("password", s, 6); ef != nil {
		errs = append(errs, *ef)
	} else {
		in.Password = s
	}

	return in, errs, nil
}

// SessionBody validates the login payload with the same length rules as
// registration so impossible credentials are rejected before the lookup.
func SessionBody(raw map[string]any) (SessionInput, Errs) {
	var in SessionInput
	var errs Errs

	if s, ef := requiredString("username", raw["username"]); ef != nil {
		errs = append(errs, *ef)
	} else if ef := minLen("username", s, 4); ef != nil {
		errs = append(errs, *ef)
	} else {
		in.Username = s
	}

	if s, ef := requiredString("password", raw["password"]); ef != nil {
		errs = append(errs, *ef)
	} else if ef := minLen("password", s, 6); ef != nil {
		errs = append(errs, *ef)
	} else {
		in.Password = s
	}

	return in, errs
}
