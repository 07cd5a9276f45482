package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type StatusAkun string

const (
	AkunAktif    StatusAkun = "aktif"
	AkunNonaktif StatusAkun = "nonaktif"
	AkunDiblokir StatusAkun = "diblokir"
)

type User struct {
	UserID       uint       `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	Nama         string     `gorm:"type:varchar(100);not null" json:"nama"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	Alamat       string     `gorm:"type:text" json:"alamat"`
	NoTelepon    string     `gorm:"type:varchar(20)" json:"no_telepon"`
	ProfileImage string     `json:"profile_image"`
	Role         Role       `gorm:"type:varchar(10);default:user" json:"role"`
	StatusAkun   StatusAkun `gorm:"type:varchar(10);default:aktif" json:"status_akun"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse menyembunyikan field sensitif saat user disematkan di response lain
type UserResponse struct {
	UserID       uint   `json:"user_id"`
	Nama         string `json:"nama"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
}

func (u *User) ToResponse() *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		UserID:       u.UserID,
		Nama:         u.Nama,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}

// Fungsi untuk hash password sebelum disimpan
func (u *User) HashPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// Fungsi untuk verifikasi password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
