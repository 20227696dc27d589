package checks

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"arche-openrefine/core/database"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DatastoreReport strictly types the result of a datastore contract check.
type DatastoreReport struct {
	Dialect string                 `json:"dialect"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckDatastore verifies the tables read by the service exist with the
// expected columns. The GORM models are the source of truth; tables are
// inspected concurrently.
func CheckDatastore(ctx context.Context, db *gorm.DB) (*DatastoreReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	dialect := database.DialectOf(db)
	report := &DatastoreReport{
		Dialect: string(dialect),
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
		Matched: true,
	}

	var mu sync.Mutex
	var g errgroup.Group
	for _, model := range database.Models() {
		g.Go(func() error {
			tableName, tblReport, err := checkTable(db.WithContext(ctx), dialect, model)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Errors = append(report.Errors, err.Error())
				report.Matched = false
				return nil
			}
			if tblReport.Status != "ok" {
				report.Matched = false
			}
			report.Tables[tableName] = tblReport
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

func checkTable(db *gorm.DB, dialect database.Dialect, model any) (string, TableReport, error) {
	val := reflect.TypeOf(model)
	tabler, ok := reflect.New(val).Interface().(interface{ TableName() string })
	if !ok {
		return "", TableReport{}, fmt.Errorf("model %s does not implement TableName", val.Name())
	}
	tableName := tabler.TableName()

	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		return tableName, tblReport, fmt.Errorf("failed to inspect table %s: %w", tableName, err)
	}

	actualMap := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if only := field.Tag.Get("dialect"); only != "" && only != string(dialect) {
			continue
		}

		gormTag := field.Tag.Get("gorm")
		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			tblReport.Status = "error"
			continue
		}

		// Soft check, only when the tag declares a type
		if expType := strings.ToLower(parseGormType(gormTag)); expType != "" && !strings.Contains(actCol.Type, expType) {
			tblReport.TypeMismatches = append(tblReport.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type))
			tblReport.Status = "error"
		}
	}

	return tableName, tblReport, nil
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}
