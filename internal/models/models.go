package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Image       string  `json:"image"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"                         json:"id"`
	UserID    uint    `gorm:"uniqueIndex:idx_user_product;not null"            json:"user_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_user_product;not null"            json:"product_id"`
	Quantity  uint    `gorm:"default:1;check:quantity>0"                       json:"quantity"`
	User      User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"    json:"-"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
