package seed

import "github.com/harramos25/GlamBook/internal/models"

func Services() []models.Service {
	return []models.Service{
		{
			ID:          "h1",
			Name:        "Silk Press & Style",
			Category:    "Hair",
			Price:       85,
			Duration:    60,
			Description: "A smooth, silky finish for natural hair using premium heat protectants.",
			Image:       "https://images.unsplash.com/photo-1560869713-7d0a29430803?q=80&w=2626&auto=format&fit=crop",
		},
		{
			ID:          "h2",
			Name:        "Luxury Trim & Treatment",
			Category:    "Hair",
			Price:       120,
			Duration:    90,
			Description: "Deep conditioning treatment followed by a precision trim to maintain health.",
			Image:       "https://images.unsplash.com/photo-1562322140-8baeececf3df?q=80&w=2669&auto=format&fit=crop",
		},
		{
			ID:          "n1",
			Name:        "Gel Manicure",
			Category:    "Nails",
			Price:       50,
			Duration:    45,
			Description: "Long-lasting gel polish with cuticle care and hand massage.",
			Image:       "https://images.unsplash.com/photo-1632345031435-8727f6897d53?q=80&w=2670&auto=format&fit=crop",
		},
		{
			ID:          "n2",
			Name:        "Acrylic Full Set",
			Category:    "Nails",
			Price:       85,
			Duration:    90,
			Description: "Full set of acrylic extensions shaped to perfection.",
			Image:       "https://images.unsplash.com/photo-1604654894610-df63bc536371?q=80&w=2669&auto=format&fit=crop",
		},
		{
			ID:          "s1",
			Name:        "Rejuvenating Facial",
			Category:    "Spa",
			Price:       150,
			Duration:    60,
			Description: "Customized facial treatment to cleanse, exfoliate, and hydrate.",
			Image:       "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?q=80&w=2670&auto=format&fit=crop",
		},
	}
}

type StaffMember struct {
	User    models.User
	Stylist models.Stylist
}

func staff(id, name, email, title, image string, rating float64, reviews int, specialties string) StaffMember {
	userID := "u-" + id
	return StaffMember{
		User: models.User{
			ID:    userID,
			Email: email,
			Name:  name,
			Role:  models.RoleStylist,
		},
		Stylist: models.Stylist{
			ID:          id,
			UserID:      userID,
			Name:        name,
			RoleTitle:   title,
			Image:       image,
			Rating:      rating,
			Reviews:     reviews,
			Specialties: specialties,
		},
	}
}

func Staff() []StaffMember {
	return []StaffMember{
		staff("st1", "Elena R.", "elena@glambook.com", "Senior Hair Stylist",
			"https://images.unsplash.com/photo-1580618672591-eb180b1a973f?q=80&w=2669&auto=format&fit=crop",
			5.0, 124, "Color,Silk Press"),
		staff("st2", "Marcus Chen", "marcus@glambook.com", "Master Barber",
			"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=2574&auto=format&fit=crop",
			4.9, 86, "Short Cuts,Fades"),
		staff("st3", "Sarah J.", "sarah@glambook.com", "Nail Artist",
			"https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=2576&auto=format&fit=crop",
			4.8, 210, "Gel,Nail Art"),
	}
}
