package model

type User struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	Nome         string `gorm:"column:nome;type:varchar(255)"`
	Role         string `gorm:"type:varchar(20);not null;default:'user'"`
}

func (User) TableName() string {
	return "brokeria_users"
}
