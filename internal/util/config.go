package util

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

type configValue struct {
	envVarName   string
	required     bool
	errorMessage string
	defaultValue string
	Value        string
}

// Int parses the value as a base-10 integer, falling back to def
// when empty or malformed.
func (c *configValue) Int(def int) int {
	if c.Value == "" {
		return def
	}

	n, err := strconv.Atoi(c.Value)
	if err != nil {
		return def
	}

	return n
}

type Config struct {
	BaseUrl           configValue
	OutputDir         configValue
	SnapshotDir       configValue
	CurrentDir        configValue
	ScrapingdogApiKey configValue
	RequestDelayMs    configValue
	JsWaitMs          configValue
	DefaultYear       configValue
	EmailTo           configValue
	EmailFrom         configValue
	SmtpHost          configValue
	SmtpPort          configValue
	SmtpUser          configValue
	SmtpPassword      configValue
	SeqUrl            configValue
	SeqToken          configValue
	Environment       configValue
}

func NewConfig() *Config {
	const baseUrlName = "EDFRINGE_BASE_URL"
	const outputDirName = "EDFRINGE_OUTPUT_DIR"
	const snapshotDirName = "EDFRINGE_SNAPSHOT_DIR"
	const currentDirName = "EDFRINGE_CURRENT_DIR"
	const scrapingdogApiKeyName = "EDFRINGE_SCRAPINGDOG_API_KEY"
	const requestDelayMsName = "EDFRINGE_REQUEST_DELAY_MS"
	const jsWaitMsName = "EDFRINGE_JS_WAIT_MS"
	const defaultYearName = "EDFRINGE_DEFAULT_YEAR"
	const emailToName = "EDFRINGE_EMAIL_TO"
	const emailFromName = "EDFRINGE_EMAIL_FROM"
	const smtpHostName = "EDFRINGE_SMTP_HOST"
	const smtpPortName = "EDFRINGE_SMTP_PORT"
	const smtpUserName = "EDFRINGE_SMTP_USER"
	const smtpPasswordName = "EDFRINGE_SMTP_PASSWORD"
	const seqUrlName = "SEQ_URL"
	const seqTokenName = "SEQ_TOKEN"
	const environmentName = "ENVIRONMENT"

	return &Config{
		BaseUrl: configValue{
			envVarName:   baseUrlName,
			required:     false,
			defaultValue: "https://www.edfringe.com",
		},
		OutputDir: configValue{
			envVarName:   outputDirName,
			required:     false,
			defaultValue: "data/raw",
		},
		SnapshotDir: configValue{
			envVarName:   snapshotDirName,
			required:     false,
			defaultValue: "data/snapshots",
		},
		CurrentDir: configValue{
			envVarName:   currentDirName,
			required:     false,
			defaultValue: "data/current",
		},
		ScrapingdogApiKey: configValue{
			envVarName:   scrapingdogApiKeyName,
			required:     false,
			errorMessage: fmt.Sprintf("make sure that environment variable %s holds a Scraping Dog API key", scrapingdogApiKeyName),
		},
		RequestDelayMs: configValue{
			envVarName:   requestDelayMsName,
			required:     false,
			defaultValue: "2000",
		},
		JsWaitMs: configValue{
			envVarName:   jsWaitMsName,
			required:     false,
			defaultValue: "15000",
		},
		DefaultYear: configValue{
			envVarName:   defaultYearName,
			required:     false,
			defaultValue: "2026",
		},
		EmailTo: configValue{
			envVarName: emailToName,
			required:   false,
		},
		EmailFrom: configValue{
			envVarName: emailFromName,
			required:   false,
		},
		SmtpHost: configValue{
			envVarName:   smtpHostName,
			required:     false,
			defaultValue: "smtp.gmail.com",
		},
		SmtpPort: configValue{
			envVarName:   smtpPortName,
			required:     false,
			defaultValue: "587",
		},
		SmtpUser: configValue{
			envVarName: smtpUserName,
			required:   false,
		},
		SmtpPassword: configValue{
			envVarName: smtpPasswordName,
			required:   false,
		},
		SeqUrl: configValue{
			envVarName: seqUrlName,
			required:   false,
		},
		SeqToken: configValue{
			envVarName: seqTokenName,
			required:   false,
		},
		Environment: configValue{
			envVarName:   environmentName,
			required:     false,
			defaultValue: "development",
		},
	}
}

var config *Config

func GetConfig() *Config {
	if config == nil {
		config = load()
	}

	return config
}

func load() *Config {
	config := NewConfig()

	values := []*configValue{
		&config.BaseUrl,
		&config.OutputDir,
		&config.SnapshotDir,
		&config.CurrentDir,
		&config.ScrapingdogApiKey,
		&config.RequestDelayMs,
		&config.JsWaitMs,
		&config.DefaultYear,
		&config.EmailTo,
		&config.EmailFrom,
		&config.SmtpHost,
		&config.SmtpPort,
		&config.SmtpUser,
		&config.SmtpPassword,
		&config.SeqUrl,
		&config.SeqToken,
		&config.Environment,
	}

	for _, v := range values {
		if err := populateEnv(v); err != nil {
			log.Fatal(err)
		}
	}

	return config
}

func populateEnv(m *configValue) (err error) {
	v := os.Getenv(m.envVarName)

	if v == "" && m.required {
		if m.errorMessage != "" {
			return errors.New(m.errorMessage)
		}

		return fmt.Errorf("environment variable %s is not set", m.envVarName)
	}

	if v == "" && m.defaultValue != "" {
		m.Value = m.defaultValue
		return nil
	}

	m.Value = v
	return nil
}
