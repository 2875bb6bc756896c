package model

import (
	"time"
)

type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ISBN            string    `json:"isbn"`
	PublishedYear   int       `json:"published_year"`
	CoverImage      string    `json:"cover_image"`
	Price           float64   `json:"price"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"review_count"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	BorrowCount     int       `json:"borrow_count"`
	AuthorID        int64     `json:"author_id"`
	AuthorName      string    `json:"author_name,omitempty"`
	CategoryID      int64     `json:"category_id"`
	CategoryName    string    `json:"category_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Pagination describes one page of a book listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
