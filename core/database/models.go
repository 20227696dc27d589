package database

// Metadata is one (entity, property, language, value) triple.
type Metadata struct {
	Mid      int64  `gorm:"column:mid;primaryKey;type:bigint"`
	ID       int64  `gorm:"column:id;type:bigint"`
	Property string `gorm:"column:property;type:text"`
	Lang     string `gorm:"column:lang"`
	Value    string `gorm:"column:value;type:text"`
}

func (Metadata) TableName() string { return "metadata" }

// Identifier maps an identifier string to its entity.
type Identifier struct {
	IDs string `gorm:"column:ids;primaryKey;type:text"`
	ID  int64  `gorm:"column:id;type:bigint"`
}

func (Identifier) TableName() string { return "identifiers" }

// FullTextSearch is a full-text index row. Mid points at the indexed metadata
// row; IID is set instead for rows indexing an identifier.
type FullTextSearch struct {
	FtsID    int64  `gorm:"column:ftsid;primaryKey;type:bigint"`
	Mid      *int64 `gorm:"column:mid;type:bigint"`
	IID      *int64 `gorm:"column:iid;type:bigint"`
	Raw      string `gorm:"column:raw;type:text"`
	Segments string `gorm:"column:segments;type:tsvector" dialect:"postgres"`
}

func (FullTextSearch) TableName() string { return "full_text_search" }

// Models lists the tables the service reads from.
func Models() []any {
	return []any{Metadata{}, Identifier{}, FullTextSearch{}}
}
