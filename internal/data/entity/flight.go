package entity

import "time"

// Flight is read-only for customers. From and To are display names that may
// carry a parenthetical airport code, e.g. "Hà Nội (HAN)".
type Flight struct {
	Base         `bson:",inline"`
	Airline      string    `db:"airline" bson:"airline"`
	FlightNumber string    `db:"flight_number" bson:"flight_number"`
	From         string    `db:"from_place" bson:"from"`
	To           string    `db:"to_place" bson:"to"`
	DepartAt     time.Time `db:"depart_at" bson:"depart_at"`
	ArriveAt     time.Time `db:"arrive_at" bson:"arrive_at"`
	Price        int64     `db:"price" bson:"price"`
	Duration     string    `db:"duration" bson:"duration"`
}
