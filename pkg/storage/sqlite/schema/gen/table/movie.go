package table

import (
	"github.com/go-jet/jet/v2/sqlite"
)

var Movie = newMovieTable("", "movie", "")

type movieTable struct {
	sqlite.Table

	// Columns
	ID     sqlite.ColumnInteger
	Title  sqlite.ColumnString
	Year   sqlite.ColumnInteger
	Rating sqlite.ColumnFloat
	Poster sqlite.ColumnString

	AllColumns     sqlite.ColumnList
	MutableColumns sqlite.ColumnList
}

type MovieTable struct {
	movieTable

	EXCLUDED movieTable
}

// AS creates new MovieTable with assigned alias
func (a MovieTable) AS(alias string) *MovieTable {
	return newMovieTable(a.SchemaName(), a.TableName(), alias)
}

func newMovieTable(schemaName, tableName, alias string) *MovieTable {
	return &MovieTable{
		movieTable: newMovieTableImpl(schemaName, tableName, alias),
		EXCLUDED:   newMovieTableImpl("", "excluded", ""),
	}
}

func newMovieTableImpl(schemaName, tableName, alias string) movieTable {
	var (
		IDColumn       = sqlite.IntegerColumn("id")
		TitleColumn    = sqlite.StringColumn("title")
		YearColumn     = sqlite.IntegerColumn("year")
		RatingColumn   = sqlite.FloatColumn("rating")
		PosterColumn   = sqlite.StringColumn("poster")
		allColumns     = sqlite.ColumnList{IDColumn, TitleColumn, YearColumn, RatingColumn, PosterColumn}
		mutableColumns = sqlite.ColumnList{TitleColumn, YearColumn, RatingColumn, PosterColumn}
	)

	return movieTable{
		Table: sqlite.NewTable(schemaName, tableName, alias, allColumns...),

		//Columns
		ID:     IDColumn,
		Title:  TitleColumn,
		Year:   YearColumn,
		Rating: RatingColumn,
		Poster: PosterColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
