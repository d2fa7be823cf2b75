package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

func GetCoreBeliefs(c *gin.Context) {
	ds := initializers.DB.From("core_belief").Order(goqu.C("display_order").Asc())
	ds = applyListOptions(c, ds, "display_order", "title")

	var beliefs []models.CoreBelief
	if err := ds.ScanStructs(&beliefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch core beliefs"})
		return
	}

	c.JSON(http.StatusOK, beliefs)
}

func CreateCoreBelief(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var newBelief models.CoreBeliefCreate
	if err := c.BindJSON(&newBelief); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	belief := models.CoreBelief{
		Title:               newBelief.Title,
		Scripture_Reference: newBelief.Scripture_Reference,
		Statement:           newBelief.Statement,
		Display_Order:       newBelief.Display_Order,
		Created_By:          user.User_Profile_ID,
		Updated_By:          user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("core_belief").Rows(belief).Returning("core_belief_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create core belief"})
		return
	}

	belief.Core_Belief_ID = insertedID

	c.JSON(http.StatusCreated, belief)
}

func UpdateCoreBelief(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	beliefID, err := strconv.Atoi(c.Param("core_belief_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid core belief ID"})
		return
	}

	var update models.CoreBeliefCreate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateStmt := initializers.DB.Update("core_belief").
		Set(goqu.Record{
			"title":               update.Title,
			"scripture_reference": update.Scripture_Reference,
			"statement":           update.Statement,
			"display_order":       update.Display_Order,
			"updated_by":          user.User_Profile_ID,
			"datetime_update":     time.Now(),
		}).
		Where(goqu.C("core_belief_id").Eq(beliefID))

	result, err := updateStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update core belief"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Core belief not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Core belief updated successfully"})
}

func DeleteCoreBelief(c *gin.Context) {
	beliefID, err := strconv.Atoi(c.Param("core_belief_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid core belief ID"})
		return
	}

	deleteStmt := initializers.DB.Delete("core_belief").
		Where(goqu.C("core_belief_id").Eq(beliefID))

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete core belief"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Core belief not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Core belief deleted successfully"})
}
