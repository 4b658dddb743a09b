package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
)

// dateOnly is the entry/display format for the date of birth. The wire format
// stays a full ISO-8601 timestamp; the profile service truncates on read.
const dateOnly = "2006-01-02"

// Profile prints the current user's profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Profile:")
	if p.DateOfBirth != nil {
		fmt.Printf("  Date of birth: %s\n", p.DateOfBirth.Format(dateOnly))
	} else {
		fmt.Println("  Date of birth: (not set)")
	}
	if p.Address != nil {
		fmt.Printf("  Address:       %s\n", *p.Address)
	} else {
		fmt.Println("  Address:       (not set)")
	}
	if p.Phone != nil {
		fmt.Printf("  Phone:         %s\n", *p.Phone)
	} else {
		fmt.Println("  Phone:         (not set)")
	}
	return nil
}

// EditProfile prompts for the editable fields and submits the update. Empty
// answers leave the corresponding field unchanged on the server. On failure
// nothing is saved and the entered values are reported back so the user can
// retry.
func (a *App) EditProfile(ctx context.Context) error {
	fmt.Println("Leave any field empty to keep its current value.")

	dobText, err := getSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return err
	}

	var upd models.ProfileUpdate
	if dobText != "" {
		dob, err := time.Parse(dateOnly, dobText)
		if err != nil {
			fmt.Println("Date of birth must look like 1990-03-14; nothing was saved.")
			return nil
		}
		upd.DateOfBirth = &dob
	}
	if address != "" {
		upd.Address = &address
	}
	if phone != "" {
		upd.Phone = &phone
	}

	if _, err := a.profiles.Update(ctx, upd); err != nil {
		fmt.Println("Profile was not saved; your input is shown above so you can retry.")
		return err
	}

	fmt.Println("Profile saved.")
	return nil
}
