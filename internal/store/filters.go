package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// catalogTable describes a name catalog (tags or ingredients) and the join
// table linking it to recipes.
type catalogTable struct {
	name       string
	joinTable  string
	joinColumn string
}

var (
	tagsTable = catalogTable{
		name:       "tags",
		joinTable:  "recipe_tags",
		joinColumn: "tag_id",
	}
	ingredientsTable = catalogTable{
		name:       "ingredients",
		joinTable:  "recipe_ingredients",
		joinColumn: "ingredient_id",
	}
)

// ownedBy restricts table rows to those owned by userID. Every read and
// write of tags, ingredients and recipes goes through it.
func ownedBy(table string, userID int64) sq.Sqlizer {
	return sq.Eq{table + ".user_id": userID}
}

// assignedOnly keeps catalog rows referenced by at least one recipe of the
// same owner. EXISTS yields every row at most once, however many recipes
// reference it.
func assignedOnly(table catalogTable) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %[1]s JOIN recipes ON recipes.id = %[1]s.recipe_id WHERE %[1]s.%[2]s = %[3]s.id AND recipes.user_id = %[3]s.user_id)",
		table.joinTable, table.joinColumn, table.name,
	))
}

// referencesAny keeps recipes linked to at least one of ids in table.
func referencesAny(table catalogTable, ids []int64) sq.Sqlizer {
	return recipeReferences{table: table, ids: ids}
}

type recipeReferences struct {
	table catalogTable
	ids   []int64
}

// ToSql renders the sub-select with "?" placeholders; the outer builder
// rewrites them to the dialect's format.
func (r recipeReferences) ToSql() (string, []any, error) {
	sub, args, err := sq.Select("recipe_id").
		From(r.table.joinTable).
		Where(sq.Eq{r.table.joinColumn: r.ids}).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return "recipes.id IN (" + sub + ")", args, nil
}
