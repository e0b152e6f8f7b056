// Package seeds holds the sample catalog loaded by the seed command.
package seeds

import "github.com/storefront/core/internal/ports"

// Products returns the sample catalog used to bootstrap an empty store.
func Products() []ports.CreateProductRequest {
	return []ports.CreateProductRequest{
		{
			Title:       "Bluetooth Speaker",
			Description: "Portable speaker with 12h battery life",
			Code:        "SPK-001",
			Price:       59.99,
			Stock:       25,
			Category:    "audio",
			Thumbnails:  []string{"/img/spk-001-front.jpg", "/img/spk-001-back.jpg"},
		},
		{
			Title:       "Over-Ear Headphones",
			Description: "Closed-back headphones with noise cancelling",
			Code:        "HDP-010",
			Price:       129.5,
			Stock:       12,
			Category:    "audio",
			Thumbnails:  []string{"/img/hdp-010.jpg"},
		},
		{
			Title:       "USB-C Charging Cable",
			Description: "Braided 2m cable, 60W",
			Code:        "CBL-203",
			Price:       9.9,
			Stock:       140,
			Category:    "accessories",
		},
		{
			Title:       "Soundbar",
			Description: "2.1 soundbar with wireless subwoofer",
			Code:        "SBR-077",
			Price:       249,
			Stock:       6,
			Category:    "audio",
			Thumbnails:  []string{"/img/sbr-077.jpg"},
		},
	}
}
