package create_review

import "github.com/m04kA/CarRental-BookingService/internal/service/reviews/models"

// CreateReviewRequest HTTP request model
// Автор отзыва определяется по аутентификации, а не по телу запроса
type CreateReviewRequest struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateReviewRequest) ToServiceRequest(userID string) *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		UserID:    userID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
