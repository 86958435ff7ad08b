package config

import (
	"errors"
	"fmt"
)

// Campaign is the root config for campaign.yaml: the ordered level list
type Campaign struct {
	Title  string   `yaml:"title"`
	Levels []string `yaml:"levels"`
}

// Validate requires at least one level and no blank ids
func (c *Campaign) Validate() error {
	if len(c.Levels) == 0 {
		return errors.New("campaign has no levels")
	}
	for i, id := range c.Levels {
		if id == "" {
			return fmt.Errorf("campaign level %d has an empty id", i)
		}
	}
	return nil
}

// Next returns the level after id, or false when id is the last one
func (c *Campaign) Next(id string) (string, bool) {
	for i, lvl := range c.Levels {
		if lvl == id && i+1 < len(c.Levels) {
			return c.Levels[i+1], true
		}
	}
	return "", false
}
