package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/configs"
	database "rumahmengaji_backend/internals/databases"
)

var (
	logger *zap.Logger
	db     *gorm.DB
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Operasi admin Rumah Mengaji (migrasi, seed, akun)",
	Long: `Tool operasional untuk database Rumah Mengaji.

Koneksi memakai DATABASE_URL atau DB_* dari environment / .env,
sama seperti server API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = configs.InitLogger()
		configs.LoadEnv()

		var err error
		db, err = database.ConnectDB()
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, createAdminCmd, resetPasswordCmd, purgeTokensCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
