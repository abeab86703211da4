package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/jbweber/homelab/recordbook/internal/app"
	"github.com/jbweber/homelab/recordbook/internal/config"
	"github.com/jbweber/homelab/recordbook/internal/datastore"
)

// builder assembles a program against opened storage
type builder func(cmd *cobra.Command, cfg *config.Config, storage *config.Storage, out io.Writer, logger *log.Logger) (app.Program, error)

var (
	financeCmd = &cobra.Command{
		Use:   "finance",
		Short: "Process sample payments against a savings account",
		RunE:  run(buildFinance),
	}

	gradingCmd = &cobra.Command{
		Use:   "grading",
		Short: "Grade students and write a report",
		RunE:  run(buildGrading),
	}

	healthcareCmd = &cobra.Command{
		Use:   "healthcare",
		Short: "List patients and their prescriptions",
		RunE:  run(buildHealthcare),
	}

	inventoryCmd = &cobra.Command{
		Use:   "inventory",
		Short: "Seed, save and load the inventory log",
		RunE:  run(buildInventory),
	}

	warehouseCmd = &cobra.Command{
		Use:   "warehouse",
		Short: "Manage electronics and grocery stock",
		RunE:  run(buildWarehouse),
	}

	allCmd = &cobra.Command{
		Use:   "all",
		Short: "Run every program in turn",
		RunE: run(
			buildFinance,
			buildGrading,
			buildHealthcare,
			buildInventory,
			buildWarehouse,
		),
	}
)

func init() {
	defaults := config.NewConfig()

	financeCmd.Flags().String(config.KeyTransactionsFile, defaults.Files.Transactions, "transaction log file")
	financeCmd.Flags().Bool("save", false, "append processed transactions to the transaction log")

	gradingCmd.Flags().String(config.KeyStudentsFile, defaults.Files.Students, "student input file")
	gradingCmd.Flags().String(config.KeyStudentReportFile, defaults.Files.StudentReport, "graded report file (overwritten)")

	inventoryCmd.Flags().String(config.KeyInventoryFile, defaults.Files.Inventory, "inventory log file")
	inventoryCmd.Flags().Bool("seed", app.DefaultInventorySteps.Seed, "insert the sample items")
	inventoryCmd.Flags().Bool("save", app.DefaultInventorySteps.Save, "append the items to the log")
	inventoryCmd.Flags().Bool("load", app.DefaultInventorySteps.Load, "load the log before printing")

	healthcareCmd.Flags().String(config.KeyPatientsFile, defaults.Files.Patients, "patient log file")
	healthcareCmd.Flags().String(config.KeyPrescriptionsFile, defaults.Files.Prescriptions, "prescription log file")
	healthcareCmd.Flags().Bool("save", false, "append the seeded patients and prescriptions to their logs")

	warehouseCmd.Flags().String(config.KeyElectronicsFile, defaults.Files.Electronics, "electronics stock log file")
	warehouseCmd.Flags().String(config.KeyGroceriesFile, defaults.Files.Groceries, "groceries stock log file")
	warehouseCmd.Flags().Bool("save", false, "append the final stock to the stock logs")

	allCmd.Flags().Bool("save", false, "save the records of finance, healthcare and warehouse")
}

// run opens storage from the layered config and runs each program in turn
func run(builders ...builder) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cfg := config.FromViper(v)
		logger := newLogger()
		out := cmd.OutOrStdout()

		storage, err := cfg.OpenStorage(ctx)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer func() {
			if err := storage.Close(); err != nil {
				logger.Printf("failed to close storage: %v", err)
			}
		}()

		for i, build := range builders {
			if i > 0 {
				fmt.Fprintln(out)
			}
			program, err := build(cmd, cfg, storage, out, logger)
			if err != nil {
				return err
			}
			if err := program.Run(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}

func buildFinance(cmd *cobra.Command, cfg *config.Config, storage *config.Storage, out io.Writer, logger *log.Logger) (app.Program, error) {
	f := &app.Finance{Out: out, Logger: logger}
	save, err := boolFlag(cmd, "save", false)
	if err != nil {
		return nil, err
	}
	if save {
		lines, err := storage.Lines(cfg.Files.Transactions, datastore.ModeAppend)
		if err != nil {
			return nil, err
		}
		logger.Printf("appending transactions to %s", storage.Describe(cfg.Files.Transactions))
		f.TransactionLog = lines
	}
	return f, nil
}

func buildGrading(_ *cobra.Command, cfg *config.Config, storage *config.Storage, out io.Writer, logger *log.Logger) (app.Program, error) {
	input, err := storage.Lines(cfg.Files.Students, datastore.ModeAppend)
	if err != nil {
		return nil, err
	}
	report, err := storage.Lines(cfg.Files.StudentReport, datastore.ModeTruncate)
	if err != nil {
		return nil, err
	}
	return &app.Grading{
		Out:        out,
		Logger:     logger,
		Input:      input,
		InputName:  storage.Describe(cfg.Files.Students),
		Report:     report,
		ReportName: storage.Describe(cfg.Files.StudentReport),
	}, nil
}

func buildHealthcare(cmd *cobra.Command, cfg *config.Config, storage *config.Storage, out io.Writer, logger *log.Logger) (app.Program, error) {
	h := &app.Healthcare{Out: out, Logger: logger}
	save, err := boolFlag(cmd, "save", false)
	if err != nil {
		return nil, err
	}
	if save {
		if h.PatientLog, err = storage.Lines(cfg.Files.Patients, datastore.ModeAppend); err != nil {
			return nil, err
		}
		if h.PrescriptionLog, err = storage.Lines(cfg.Files.Prescriptions, datastore.ModeAppend); err != nil {
			return nil, err
		}
		logger.Printf("appending patients to %s and prescriptions to %s",
			storage.Describe(cfg.Files.Patients), storage.Describe(cfg.Files.Prescriptions))
	}
	return h, nil
}

func buildInventory(cmd *cobra.Command, cfg *config.Config, storage *config.Storage, out io.Writer, logger *log.Logger) (app.Program, error) {
	lines, err := storage.Lines(cfg.Files.Inventory, datastore.ModeAppend)
	if err != nil {
		return nil, err
	}
	steps := app.DefaultInventorySteps
	// Step flags belong to the inventory command; under "all" the defaults apply
	if cmd.Name() == "inventory" {
		if steps.Seed, err = boolFlag(cmd, "seed", steps.Seed); err != nil {
			return nil, err
		}
		if steps.Save, err = boolFlag(cmd, "save", steps.Save); err != nil {
			return nil, err
		}
		if steps.Load, err = boolFlag(cmd, "load", steps.Load); err != nil {
			return nil, err
		}
	}
	return &app.Inventory{Out: out, Logger: logger, Log: lines, Steps: steps}, nil
}

func buildWarehouse(cmd *cobra.Command, cfg *config.Config, storage *config.Storage, out io.Writer, logger *log.Logger) (app.Program, error) {
	wh := &app.Warehouse{Out: out, Logger: logger}
	save, err := boolFlag(cmd, "save", false)
	if err != nil {
		return nil, err
	}
	if save {
		if wh.ElectronicsLog, err = storage.Lines(cfg.Files.Electronics, datastore.ModeAppend); err != nil {
			return nil, err
		}
		if wh.GroceriesLog, err = storage.Lines(cfg.Files.Groceries, datastore.ModeAppend); err != nil {
			return nil, err
		}
		logger.Printf("appending stock to %s and %s",
			storage.Describe(cfg.Files.Electronics), storage.Describe(cfg.Files.Groceries))
	}
	return wh, nil
}

// boolFlag reads a bool flag that cmd may not define. Undefined flags
// yield fallback.
func boolFlag(cmd *cobra.Command, name string, fallback bool) (bool, error) {
	if cmd.Flags().Lookup(name) == nil {
		return fallback, nil
	}
	return cmd.Flags().GetBool(name)
}
