package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/models"
	"github.com/doug-martin/goqu/v9"
	"golang.org/x/crypto/bcrypt"
)

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func PublicUserSignup(c *gin.Context) {
	var signup models.UserSignup

	if err := c.ShouldBindJSON(&signup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCount, err := initializers.DB.From("user_profile").
		Select("email").
		Where(goqu.C("email").Eq(signup.Email)).
		Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if userCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An account with this email already exists."})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newUser := models.UserProfile{
		Email:     signup.Email,
		Password:  string(passwordHash),
		Full_Name: signup.Full_Name,
		Role:      models.RoleMember,
	}

	insert := initializers.DB.Insert("user_profile").Rows(newUser).Returning("user_profile_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	newUser.User_Profile_ID = insertedID

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully.",
		"user":    newUser,
	})
}

func UserLogin(c *gin.Context) {
	var login models.Login

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dbUser models.UserProfile
	found, err := initializers.DB.From("user_profile").
		Select("*").
		Where(goqu.C("email").Eq(login.Email)).
		ScanStruct(&dbUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(login.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	generateToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   dbUser.User_Profile_ID,
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
		"role": string(dbUser.Role),
	})

	token, err := generateToken.SignedString([]byte(os.Getenv("SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully.",
		"token":   token,
		"user":    dbUser,
	})
}

func GetCurrentUser(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"canEdit": user.Role.CanEdit(),
		"admin":   user.Role.IsAdmin(),
	})
}

func GetUsers(c *gin.Context) {
	var users []models.UserProfile
	err := initializers.DB.From("user_profile").
		Order(goqu.C("full_name").Asc()).
		ScanStructs(&users)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// canChangeRole applies the role assignment rules: nobody edits their own
// role, only a super admin hands out admin or super admin, and an admin may
// only manage members and editors.
func canChangeRole(actor models.UserProfile, target models.UserProfile, newRole models.Role) (int, string) {
	if target.User_Profile_ID == actor.User_Profile_ID {
		return http.StatusForbidden, "You cannot change your own role"
	}
	if !newRole.Valid() {
		return http.StatusBadRequest, "Unknown role"
	}
	if newRole.IsAdmin() && actor.Role != models.RoleSuperAdmin {
		return http.StatusForbidden, "Only a super admin can assign admin roles"
	}
	if target.Role.IsAdmin() && actor.Role != models.RoleSuperAdmin {
		return http.StatusForbidden, "Only a super admin can change another admin's role"
	}
	return 0, ""
}

func UpdateUserRole(c *gin.Context) {
	actor := c.MustGet("currentUser").(models.UserProfile)

	userID, err := strconv.Atoi(c.Param("user_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user profile ID"})
		return
	}

	var update models.UserRoleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var target models.UserProfile
	found, err := initializers.DB.From("user_profile").
		Where(goqu.C("user_profile_id").Eq(userID)).
		ScanStruct(&target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if status, msg := canChangeRole(actor, target, update.Role); status != 0 {
		c.JSON(status, gin.H{"error": msg})
		return
	}

	updateStmt := initializers.DB.Update("user_profile").
		Set(goqu.Record{
			"role":            update.Role,
			"updated_by":      actor.User_Profile_ID,
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("user_profile_id").Eq(userID))

	if _, err := updateStmt.Executor().Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully"})
}

func DeleteUser(c *gin.Context) {
	actor := c.MustGet("currentUser").(models.UserProfile)

	userID, err := strconv.Atoi(c.Param("user_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user profile ID"})
		return
	}

	if userID == actor.User_Profile_ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot delete your own account here"})
		return
	}

	var target models.UserProfile
	found, err := initializers.DB.From("user_profile").
		Where(goqu.C("user_profile_id").Eq(userID)).
		ScanStruct(&target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if target.Role.IsAdmin() && actor.Role != models.RoleSuperAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only a super admin can delete an admin"})
		return
	}

	deleteStmt := initializers.DB.Delete("user_profile").
		Where(goqu.C("user_profile_id").Eq(userID))

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
