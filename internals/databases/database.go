package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/configs"
)

// ConnectDB membuka koneksi Postgres. Error unique/FK diterjemahkan GORM
// (TranslateError) supaya service cukup cek gorm.ErrDuplicatedKey dkk.
func ConnectDB() (*gorm.DB, error) {
	zap.L().Info("connecting to PostgreSQL")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  configs.DatabaseDSN(),
		PreferSimpleProtocol: true, // aman untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(zap.L()),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	zap.L().Info("database connected")
	return db, nil
}

func TunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "pool tune")
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

// WarmUp: ping sekali supaya pool sudah terisi sebelum request pertama.
func WarmUp(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "warm-up")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "warm-up ping")
	}
	return nil
}
