package controllers

import (
	"strconv"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// applyListOptions maps the shared list query options onto a select: `sort`
// (field name, leading '-' for descending, checked against the entity's
// sortable columns) and `limit`. Unknown sort fields are ignored rather than
// rejected.
func applyListOptions(c *gin.Context, ds *goqu.SelectDataset, sortable ...string) *goqu.SelectDataset {
	if sortParam := c.Query("sort"); sortParam != "" {
		field := strings.TrimPrefix(sortParam, "-")
		for _, s := range sortable {
			if s == field {
				if strings.HasPrefix(sortParam, "-") {
					ds = ds.Order(goqu.C(field).Desc())
				} else {
					ds = ds.Order(goqu.C(field).Asc())
				}
				break
			}
		}
	}

	if limitParam := c.Query("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n > 0 {
			ds = ds.Limit(uint(n))
		}
	}

	return ds
}
