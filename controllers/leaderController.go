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

func GetLeaders(c *gin.Context) {
	ds := initializers.DB.From("leader").Order(goqu.C("display_order").Asc())
	ds = applyListOptions(c, ds, "display_order", "name")

	var leaders []models.Leader
	if err := ds.ScanStructs(&leaders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaders"})
		return
	}

	c.JSON(http.StatusOK, leaders)
}

func CreateLeader(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var newLeader models.LeaderCreate
	if err := c.BindJSON(&newLeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leader := models.Leader{
		Name:          newLeader.Name,
		Role:          newLeader.Role,
		Bio:           newLeader.Bio,
		Profile_Image: newLeader.Profile_Image,
		Email:         newLeader.Email,
		Phone:         newLeader.Phone,
		Display_Order: newLeader.Display_Order,
		Created_By:    user.User_Profile_ID,
		Updated_By:    user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("leader").Rows(leader).Returning("leader_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create leader"})
		return
	}

	leader.Leader_ID = insertedID

	c.JSON(http.StatusCreated, leader)
}

func UpdateLeader(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	leaderID, err := strconv.Atoi(c.Param("leader_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leader ID"})
		return
	}

	var update models.LeaderCreate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateStmt := initializers.DB.Update("leader").
		Set(goqu.Record{
			"name":            update.Name,
			"role":            update.Role,
			"bio":             update.Bio,
			"profile_image":   update.Profile_Image,
			"email":           update.Email,
			"phone":           update.Phone,
			"display_order":   update.Display_Order,
			"updated_by":      user.User_Profile_ID,
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("leader_id").Eq(leaderID))

	result, err := updateStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update leader"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leader not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leader updated successfully"})
}

func DeleteLeader(c *gin.Context) {
	leaderID, err := strconv.Atoi(c.Param("leader_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leader ID"})
		return
	}

	deleteStmt := initializers.DB.Delete("leader").
		Where(goqu.C("leader_id").Eq(leaderID))

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete leader"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leader not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leader deleted successfully"})
}
