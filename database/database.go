package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"campusmarket/models"
)

// Connect membuka koneksi MySQL dan mengembalikan handle-nya; tidak ada
// state global, pemilik koneksi adalah main
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gagal terhubung ke database: %w", err)
	}

	fmt.Println("✅ Database connected successfully!")

	// Migrasi model ke dalam database
	err = db.AutoMigrate(
		&models.User{},
		&models.Kategori{},
		&models.Barang{},
		&models.Transaksi{},
		&models.Rating{},
		&models.Wishlist{},
		&models.Laporan{},
		&models.Notifikasi{},
		&models.Chat{},
	)
	if err != nil {
		return nil, fmt.Errorf("gagal migrasi database: %w", err)
	}
	fmt.Println("✅ Database migrated successfully!")

	return db, nil
}
