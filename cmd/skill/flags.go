package main

import (
	"flag"
	"os"

	"bitbucket.org/sotavant/spicerack-skill/internal/config"
)

var flagEnsureTable bool

func parseFlags() config.Config {
	cfg := config.Default()

	flag.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "address and port")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.AppID, "app-id", cfg.AppID, "expected skill application id, empty disables the check")
	flag.StringVar(&cfg.SkillName, "name", cfg.SkillName, "skill display name")
	flag.StringVar(&cfg.InvocationName, "invocation", cfg.InvocationName, "skill invocation name")
	flag.StringVar(&cfg.StoreKind, "store", cfg.StoreKind, "store backend: dynamo or memory")
	flag.StringVar(&cfg.TableName, "table", cfg.TableName, "DynamoDB table name")
	flag.StringVar(&cfg.Region, "region", cfg.Region, "AWS region")
	flag.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "DynamoDB endpoint override")
	flag.BoolVar(&flagEnsureTable, "ensure-table", false, "create the table on startup if it is missing")
	flag.Parse()

	applyEnv(&cfg)
	return cfg
}

func applyEnv(cfg *config.Config) {
	for env, dst := range map[string]*string{
		"RUN_ADDR":          &cfg.RunAddr,
		"LOG_LEVEL":         &cfg.LogLevel,
		"SKILL_APP_ID":      &cfg.AppID,
		"SKILL_NAME":        &cfg.SkillName,
		"SKILL_INVOCATION":  &cfg.InvocationName,
		"STORE_KIND":        &cfg.StoreKind,
		"TABLE_NAME":        &cfg.TableName,
		"AWS_REGION":        &cfg.Region,
		"DYNAMODB_ENDPOINT": &cfg.Endpoint,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
}
