package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables (RECORDBOOK_ prefix, dashes
// become underscores) and .env files.
const (
	KeyDataDir           = "data-dir"
	KeyBackend           = "backend"
	KeyDBPath            = "db-path"
	KeyTransactionsFile  = "transactions-file"
	KeyStudentsFile      = "students-file"
	KeyStudentReportFile = "report-file"
	KeyInventoryFile     = "inventory-file"
	KeyPatientsFile      = "patients-file"
	KeyPrescriptionsFile = "prescriptions-file"
	KeyElectronicsFile   = "electronics-file"
	KeyGroceriesFile     = "groceries-file"
)

// LoadEnv loads .env and .env.local from the working directory if present
func LoadEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// NewViper returns a viper instance reading RECORDBOOK_* variables with
// NewConfig's values as defaults.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("recordbook")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := NewConfig()
	v.SetDefault(KeyDataDir, defaults.DataDir)
	v.SetDefault(KeyBackend, defaults.Backend)
	v.SetDefault(KeyDBPath, defaults.DBPath)
	v.SetDefault(KeyTransactionsFile, defaults.Files.Transactions)
	v.SetDefault(KeyStudentsFile, defaults.Files.Students)
	v.SetDefault(KeyStudentReportFile, defaults.Files.StudentReport)
	v.SetDefault(KeyInventoryFile, defaults.Files.Inventory)
	v.SetDefault(KeyPatientsFile, defaults.Files.Patients)
	v.SetDefault(KeyPrescriptionsFile, defaults.Files.Prescriptions)
	v.SetDefault(KeyElectronicsFile, defaults.Files.Electronics)
	v.SetDefault(KeyGroceriesFile, defaults.Files.Groceries)
	return v
}

// FromViper builds a Config from v
func FromViper(v *viper.Viper) *Config {
	return &Config{
		DataDir: v.GetString(KeyDataDir),
		Backend: strings.ToLower(v.GetString(KeyBackend)),
		DBPath:  v.GetString(KeyDBPath),
		Files: Files{
			Transactions:  v.GetString(KeyTransactionsFile),
			Students:      v.GetString(KeyStudentsFile),
			StudentReport: v.GetString(KeyStudentReportFile),
			Inventory:     v.GetString(KeyInventoryFile),
			Patients:      v.GetString(KeyPatientsFile),
			Prescriptions: v.GetString(KeyPrescriptionsFile),
			Electronics:   v.GetString(KeyElectronicsFile),
			Groceries:     v.GetString(KeyGroceriesFile),
		},
	}
}
