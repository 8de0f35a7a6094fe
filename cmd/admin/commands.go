package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rumahmengaji_backend/internals/configs"
	"rumahmengaji_backend/internals/constants"
	database "rumahmengaji_backend/internals/databases"
	authService "rumahmengaji_backend/internals/features/users/auth/service"
	"rumahmengaji_backend/internals/features/users/user/dto"
	"rumahmengaji_backend/internals/features/users/user/model"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	"rumahmengaji_backend/internals/seeds"
)

var (
	seedDir       string
	adminEmail    string
	adminPassword string
	adminName     string
	purgeGrace    time.Duration
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Buat/ubah tabel, index dan constraint",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("✅ migrasi selesai")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Isi data awal dari file JSON (user lalu pusat)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return seeds.RunAllSeeds(cmd.Context(), db, seedDir)
	},
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Buat akun administrator (default dari ADMIN_EMAIL / ADMIN_PASSWORD)",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := firstNonEmpty(adminEmail, configs.GetEnv("ADMIN_EMAIL"))
		password := firstNonEmpty(adminPassword, configs.GetEnv("ADMIN_PASSWORD"))
		if email == "" || password == "" {
			return fmt.Errorf("email dan password wajib (flag atau ADMIN_EMAIL / ADMIN_PASSWORD)")
		}

		var n int64
		if err := db.WithContext(cmd.Context()).Model(&model.UserModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			logger.Info("administrator sudah ada, dilewati", zap.String("email", email))
			return nil
		}

		u, err := userService.NewUserService(db).Create(cmd.Context(), dto.CreateUserRequest{
			Email:    email,
			Password: password,
			FullName: adminName,
			Role:     string(constants.RoleAdministrator),
		})
		if err != nil {
			return err
		}
		logger.Info("✅ administrator dibuat", zap.Uint("user_id", u.ID), zap.String("email", u.Email))
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email> <password>",
	Short: "Ganti password user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := userService.NewUserService(db).ResetPassword(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		logger.Info("✅ password diganti", zap.String("email", args[0]))
		return nil
	},
}

var purgeTokensCmd = &cobra.Command{
	Use:   "purge-tokens",
	Short: "Hapus token blacklist yang sudah kedaluwarsa",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := authService.NewTokenService(db, configs.JWTSecret, configs.JWTTTL)
		n, err := tokens.PurgeExpired(cmd.Context(), purgeGrace)
		if err != nil {
			return err
		}
		logger.Info("✅ blacklist dibersihkan", zap.Int64("deleted", n))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedDir, "dir", "internals/seeds/data", "folder berisi data_users.json & data_study_centers.json")

	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "email administrator")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "password administrator")
	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "nama lengkap")

	purgeTokensCmd.Flags().DurationVar(&purgeGrace, "grace", 0, "simpan baris yang kedaluwarsa kurang dari durasi ini")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
