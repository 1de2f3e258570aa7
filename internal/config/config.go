package config

import (
	"fmt"
	"time"
)

const (
	StoreDynamo = "dynamo"
	StoreMemory = "memory"
)

type Config struct {
	// AppID is the expected skill application identifier. Empty disables the check.
	AppID          string
	SkillName      string
	InvocationName string

	TableName        string
	Region           string
	Endpoint         string
	StoreKind        string
	TableWaitTimeout time.Duration

	RunAddr  string
	LogLevel string
}

func Default() Config {
	return Config{
		SkillName:        "Spice Rack Locator",
		InvocationName:   "Spice Rack",
		TableName:        "spice-map",
		Region:           "us-east-1",
		StoreKind:        StoreDynamo,
		TableWaitTimeout: 2 * time.Minute,
		RunAddr:          ":8080",
		LogLevel:         "info",
	}
}

func (c Config) Validate() error {
	switch c.StoreKind {
	case StoreDynamo:
		if c.TableName == "" {
			return fmt.Errorf("table name is required for the %s store", StoreDynamo)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store kind %q", c.StoreKind)
	}

	if c.SkillName == "" || c.InvocationName == "" {
		return fmt.Errorf("skill name and invocation name are required")
	}
	return nil
}
