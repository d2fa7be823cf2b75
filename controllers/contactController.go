package controllers

import (
	"net/http"

	"github.com/ShalomVision/services"

	"github.com/gin-gonic/gin"
)

type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContactMessage forwards a contact-form submission to the ministry
// inbox.
func SubmitContactMessage(c *gin.Context) {
	var msg ContactMessage
	if err := c.BindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.GetEmailService().SendContactMessage(msg.Name, msg.Email, msg.Subject, msg.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for reaching out. We'll get back to you soon."})
}
