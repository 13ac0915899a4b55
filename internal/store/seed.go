package store

import "autoluxe/internal/models"

func ptr[T any](v T) *T { return &v }

// SeedVehicles returns the fixed showcase inventory used to bootstrap an
// empty vehicles table. Each call returns fresh copies so callers can mutate
// freely.
func SeedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:           "hyperion-x",
			Make:         "Hyperion",
			Model:        "X GT",
			Year:         2024,
			Price:        145000,
			Mileage:      1240,
			FuelType:     models.FuelTypeElectric,
			Transmission: "Automatic",
			Horsepower:   1020,
			ZeroToSixty:  ptr(2.4),
			Range:        ptr(637),
			Drivetrain:   ptr("AWD"),
			BodyStyle:    ptr("Coupe"),
			Seating:      ptr(4),
			Description:  "Experience the future of driving with the 2024 Hyperion X GT. This electric masterpiece pairs track-level performance with uncompromised luxury. The new tri-motor architecture delivers torque vectoring that defies physics, and the cabin is trimmed in sustainable vegan leather around a 17-inch cinematic display.",
			Features:     []string{"Autopilot Navigation", "360 Camera", "Premium Audio (22 speakers)", "Heated & Ventilated Seats", "Carbon Fiber Wing", "21\" Arachnid Wheels"},
			Images: []string{
				"https://images.unsplash.com/photo-1617788138017-80ad40651399?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1542282088-fe8426682b8f?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1493238792015-fa094a310cf5?q=80&w=2070&auto=format&fit=crop",
			},
			Category: models.CategorySport,
			Badge:    ptr(models.BadgeNew),
			Seller: &models.Seller{
				Name:     "Luxe Motors Beverly Hills",
				Verified: true,
				Location: "Beverly Hills, CA",
				Phone:    "+1 (310) 555-0123",
			},
		},
		{
			ID:           "1",
			Make:         "Porsche",
			Model:        "911 Carrera S",
			Year:         2023,
			Price:        135000,
			Mileage:      4200,
			FuelType:     models.FuelTypePetrol,
			Transmission: "Automatic (PDK)",
			Horsepower:   443,
			ZeroToSixty:  ptr(3.5),
			Drivetrain:   ptr("RWD"),
			BodyStyle:    ptr("Coupe"),
			Seating:      ptr(4),
			Description:  "A timeless icon. The Porsche 911 blends heritage with cutting-edge technology. GT Silver Metallic over a Bordeaux Red interior.",
			Features:     []string{"Sport Chrono Package", "BOSE Surround Sound", "20/21\" RS Spyder Wheels", "Sport Exhaust"},
			Images: []string{
				"https://images.unsplash.com/photo-1614162692292-7ac56d7f7f1e?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1580274455191-1c62238fa333?q=80&w=2070&auto=format&fit=crop",
			},
			Category: models.CategorySport,
			Badge:    ptr(models.BadgeNew),
			Seller: &models.Seller{
				Name:     "Porsche Centre",
				Verified: true,
				Location: "Los Angeles, CA",
				Phone:    "(555) 123-4567",
			},
		},
		{
			ID:           "2",
			Make:         "Mercedes-Benz",
			Model:        "AMG GT",
			Year:         2022,
			Price:        112500,
			Mileage:      12000,
			FuelType:     models.FuelTypePetrol,
			Transmission: "Automatic",
			Horsepower:   523,
			ZeroToSixty:  ptr(3.7),
			Drivetrain:   ptr("RWD"),
			BodyStyle:    ptr("Coupe"),
			Seating:      ptr(2),
			Description:  "Performance luxury at its peak. The long hood and short rear deck give the AMG GT classic sports car proportions.",
			Features:     []string{"Night Package", "Burmester Sound", "Carbon Trim", "Active Aerodynamics"},
			Images: []string{
				"https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?q=80&w=2070&auto=format&fit=crop",
			},
			Category: models.CategorySedan,
			Badge:    ptr(models.BadgeCertified),
			Seller: &models.Seller{
				Name:     "MB of Santa Monica",
				Verified: true,
				Location: "Santa Monica, CA",
				Phone:    "(555) 999-8888",
			},
		},
		{
			ID:           "3",
			Make:         "Tesla",
			Model:        "Model S Plaid",
			Year:         2023,
			Price:        89900,
			Mileage:      500,
			FuelType:     models.FuelTypeElectric,
			Transmission: "Automatic",
			Horsepower:   1020,
			ZeroToSixty:  ptr(1.99),
			Range:        ptr(600),
			Drivetrain:   ptr("AWD"),
			BodyStyle:    ptr("Sedan"),
			Seating:      ptr(5),
			Description:  "The quickest-accelerating production car. Tri-motor all-wheel drive and the yoke steering wheel define this engineering marvel.",
			Features:     []string{"Full Self-Driving", "Yoke Steering", "21\" Wheels", "Carbon Interior"},
			Images: []string{
				"https://images.unsplash.com/photo-1619767886558-efdc259cde1a?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1536700503339-1e4b06520771?q=80&w=2070&auto=format&fit=crop",
			},
			Category: models.CategoryElectric,
			Seller: &models.Seller{
				Name:     "Tesla Direct",
				Verified: true,
				Location: "Fremont, CA",
				Phone:    "(555) 000-0000",
			},
		},
		{
			ID:           "4",
			Make:         "Audi",
			Model:        "RS7 Sportback",
			Year:         2024,
			Price:        122000,
			Mileage:      50,
			FuelType:     models.FuelTypePetrol,
			Transmission: "Automatic",
			Horsepower:   591,
			ZeroToSixty:  ptr(3.5),
			Drivetrain:   ptr("AWD"),
			BodyStyle:    ptr("Sedan"),
			Seating:      ptr(5),
			Description:  "Stunning design meets blistering performance. The RS7 Sportback is the ultimate daily driver for enthusiasts.",
			Features:     []string{"Ceramic Brakes", "Laser Lights", "Black Optic Package", "Air Suspension"},
			Images: []string{
				"https://images.unsplash.com/photo-1603584173870-7b299f589389?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1502161254066-6c74afbf07aa?q=80&w=2070&auto=format&fit=crop",
			},
			Category: models.CategorySedan,
			Badge:    ptr(models.BadgeDeal),
		},
		{
			ID:           "5",
			Make:         "BMW",
			Model:        "M4 Competition",
			Year:         2023,
			Price:        98500,
			Mileage:      8000,
			FuelType:     models.FuelTypePetrol,
			Transmission: "Automatic",
			Horsepower:   503,
			ZeroToSixty:  ptr(3.4),
			Drivetrain:   ptr("AWD"),
			BodyStyle:    ptr("Coupe"),
			Seating:      ptr(4),
			Description:  "The ultimate driving machine. Aggressive styling and M xDrive capability.",
			Features:     []string{"Carbon Bucket Seats", "Head-Up Display", "Laser Lights", "M Carbon Exterior Package"},
			Images: []string{
				"https://images.unsplash.com/photo-1555215695-3004980ad54e?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1556189250-72ba954e6eb3?q=80&w=2070&auto=format&fit=crop",
			},
			Category: models.CategorySport,
		},
		{
			ID:           "6",
			Make:         "Land Rover",
			Model:        "Defender 110",
			Year:         2021,
			Price:        78000,
			Mileage:      35000,
			FuelType:     models.FuelTypeDiesel,
			Transmission: "Automatic",
			Horsepower:   296,
			ZeroToSixty:  ptr(6.7),
			Drivetrain:   ptr("AWD"),
			BodyStyle:    ptr("SUV"),
			Seating:      ptr(7),
			Description:  "Capable of great things. The Defender 110 honors its heritage while embracing the future.",
			Features:     []string{"Air Suspension", "Meridian Sound", "Off-road Package", "Panoramic Roof"},
			Images: []string{
				"https://images.unsplash.com/photo-1609521263047-f8f205293f24?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1519245659620-e859806a8d3b?q=80&w=2070&auto=format&fit=crop",
			},
			Category: models.CategorySUV,
			Badge:    ptr(models.BadgeUsed),
		},
	}
}
