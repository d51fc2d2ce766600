package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"catalogapi/models"
)

type sampleProduct struct {
	title       string
	price       float64
	description string
	image       string
	category    string
}

var sampleProducts = []sampleProduct{
	{"Comfortable Office Chair", 120, "Ergonomic chair designed for long hours of comfortable sitting", "https://loremflickr.com/640/480/furniture", "category 3"},
	{"Stylish Laptop Bag", 80, "Durable laptop bag with modern design and plenty of storage", "https://loremflickr.com/640/480/bag", "category 5"},
	{"Smartphone Stand", 25, "Adjustable stand for smartphones, perfect for video calls and watching movies", "https://loremflickr.com/640/480/gadget", "category 7"},
	{"Gourmet Coffee Beans", 30, "Premium coffee beans roasted to perfection for rich flavor", "https://loremflickr.com/640/480/coffee", "category 2"},
	{"Fitness Tracker", 90, "Advanced fitness tracker with heart rate monitor and GPS", "https://loremflickr.com/640/480/sport", "category 6"},
	{"Organic Facial Cleanser", 35, "Gentle facial cleanser made from natural ingredients", "https://loremflickr.com/640/480/skincare", "category 4"},
	{"Portable Bluetooth Speaker", 55, "Compact speaker with powerful sound quality and wireless connectivity", "https://loremflickr.com/640/480/electronics", "category 8"},
	{"Designer Sunglasses", 180, "Fashionable sunglasses with UV protection lenses", "https://loremflickr.com/640/480/accessories", "category 10"},
	{"Luxury Watch", 250, "Elegant watch with Swiss movement and stainless steel strap", "https://loremflickr.com/640/480/watch", "category 11"},
	{"Digital Camera", 320, "High-resolution digital camera with multiple shooting modes", "https://loremflickr.com/640/480/camera", "category 12"},
	{"Artisanal Handbag", 150, "Handcrafted leather handbag with intricate design", "https://loremflickr.com/640/480/handbag", "category 5"},
	{"Wireless Gaming Mouse", 70, "Responsive mouse designed for gamers, with customizable buttons", "https://loremflickr.com/640/480/gaming", "category 7"},
	{"Classic Fountain Pen", 45, "Elegant fountain pen with gold-plated nib, perfect for writing enthusiasts", "https://loremflickr.com/640/480/stationery", "category 13"},
	{"Fitness Yoga Mat", 40, "Non-slip yoga mat with eco-friendly materials", "https://loremflickr.com/640/480/yoga", "category 6"},
	{"Smart Home Thermostat", 120, "Wi-Fi enabled thermostat for smart home automation", "https://loremflickr.com/640/480/smart-home", "category 14"},
	{"Travel Backpack", 65, "Durable backpack with multiple compartments for travel convenience", "https://loremflickr.com/640/480/backpack", "category 5"},
	{"Wireless Earbuds", 95, "High-fidelity wireless earbuds with noise-cancellation technology", "https://loremflickr.com/640/480/earbuds", "category 8"},
	{"Organic Tea Sampler", 28, "Selection of organic teas from around the world, ideal for tea enthusiasts", "https://loremflickr.com/640/480/tea", "category 2"},
	{"Designer Hand Watch", 180, "Men's fashion watch with leather strap and water resistance", "https://loremflickr.com/640/480/watch", "category 11"},
}

// Seed inserts the sample catalog if the products table is empty.
// Kept separate from Open so tests can start from a clean database.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stmt, err := db.Prepare(`
		INSERT INTO products (
			product_id, product_title, product_price,
			product_description, product_image, product_category,
			created_timestamp, updated_timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range sampleProducts {
		now := time.Now().UTC().Format(models.TimestampFormat)
		if _, err := stmt.Exec(uuid.NewString(), p.title, p.price, p.description, p.image, p.category, now, now); err != nil {
			return err
		}
	}
	return nil
}
