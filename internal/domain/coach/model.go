package coach

import "fmt"

// Coach is an individual tenant owner linked to an authentication account.
type Coach struct {
	ID        string
	AccountID string
	Name      string
}

func (c Coach) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("coach id is required")
	}
	if c.AccountID == "" {
		return fmt.Errorf("coach account id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("coach name is required")
	}

	return nil
}
