package model

type Movie struct {
	ID     int32 `sql:"primary_key"`
	Title  string
	Year   int64
	Rating float64
	Poster string
}
