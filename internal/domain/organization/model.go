package organization

import "fmt"

// Organization is a club or academy tenant owner linked to an
// authentication account.
type Organization struct {
	ID        string
	AccountID string
	Name      string
}

func (o Organization) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("organization id is required")
	}
	if o.AccountID == "" {
		return fmt.Errorf("organization account id is required")
	}
	if o.Name == "" {
		return fmt.Errorf("organization name is required")
	}

	return nil
}
