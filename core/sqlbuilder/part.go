package sqlbuilder

import (
	"fmt"
	"strings"
)

// Part is a fragment of SQL text together with its positional arguments.
// Every '?' placeholder appended to the text is matched by exactly one
// argument, in order.
type Part struct {
	sql  strings.Builder
	args []any
	err  error
}

// New starts a Part with the given text and arguments.
func New(sql string, args ...any) *Part {
	p := &Part{}
	return p.Append(sql, args...)
}

// Append adds text and its arguments. A placeholder count that differs from
// len(args) is recorded and reported by Build.
func (p *Part) Append(sql string, args ...any) *Part {
	if n := strings.Count(sql, "?"); n != len(args) && p.err == nil {
		p.err = fmt.Errorf("sqlbuilder: %d placeholders but %d arguments in %q", n, len(args), sql)
	}
	p.sql.WriteString(sql)
	p.args = append(p.args, args...)
	return p
}

// AppendPart adds another Part, keeping its arguments aligned.
func (p *Part) AppendPart(o *Part) *Part {
	if o.err != nil && p.err == nil {
		p.err = o.err
	}
	p.sql.WriteString(o.sql.String())
	p.args = append(p.args, o.args...)
	return p
}

// In appends "expr IN (?, ?, ...)" with one argument per value.
// Callers must not pass an empty list.
func (p *Part) In(expr string, values []string) *Part {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return p.Append(expr+" IN ("+Placeholders(len(values))+")", args...)
}

// Build returns the query text and its argument vector.
func (p *Part) Build() (string, []any, error) {
	if p.err != nil {
		return "", nil, p.err
	}
	return p.sql.String(), p.args, nil
}

// Placeholders returns n comma separated '?' markers.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

// EscapeLike escapes LIKE wildcards so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
