package database

import "time"

// seedDocument builds the initial store contents: the static trainer roster
// and a one-day timetable on the given date. Applied once, only when no
// store file exists.
func seedDocument(now time.Time) *Document {
	today := now.Format("2006-01-02")
	return &Document{
		Users:           map[string]Record{},
		ContactMessages: []Record{},
		Bookings:        []Record{},
		Trainers: []Record{
			{"id": "1", "name": "Axel Stone", "specialty": "Strength"},
			{"id": "2", "name": "Blaze Fielding", "specialty": "HIIT"},
			{"id": "3", "name": "Adam Hunter", "specialty": "Boxing"},
		},
		Classes: []Record{
			{
				"id": "101", "name": "Iron Forged", "type": "Strength",
				"class_date": today, "start_time": "06:00:00", "duration_minutes": 60,
				"trainer_id": "1", "capacity": 20, "available_slots": 15,
				"plan_requirement": "Basic",
			},
			{
				"id": "102", "name": "Burn Protocol", "type": "HIIT",
				"class_date": today, "start_time": "09:00:00", "duration_minutes": 45,
				"trainer_id": "2", "capacity": 25, "available_slots": 25,
				"plan_requirement": "Basic",
			},
			{
				"id": "103", "name": "Knockout", "type": "Cardio",
				"class_date": today, "start_time": "18:00:00", "duration_minutes": 60,
				"trainer_id": "3", "capacity": 15, "available_slots": 2,
				"plan_requirement": "Premium",
			},
		},
		Payments: []Record{},
	}
}
