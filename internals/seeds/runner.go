package seeds

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"

	studyCenters "rumahmengaji_backend/internals/seeds/study_centers"
	users "rumahmengaji_backend/internals/seeds/users"
)

// RunAllSeeds membaca data_users.json lalu data_study_centers.json dari dir.
// Urutan penting: pusat merujuk admin lewat email.
func RunAllSeeds(ctx context.Context, db *gorm.DB, dir string) error {
	//* User
	n, err := users.SeedUsersFromJSON(ctx, db, filepath.Join(dir, "data_users.json"))
	if err != nil {
		return err
	}
	zap.L().Info("seed users selesai", zap.Int("inserted", n))

	//* Study centers
	n, err = studyCenters.SeedStudyCentersFromJSON(ctx, db, filepath.Join(dir, "data_study_centers.json"))
	if err != nil {
		return err
	}
	zap.L().Info("seed study centers selesai", zap.Int("inserted", n))
	return nil
}
