package services_test

import (
	"errors"
	"testing"

	"gadgetbay/internal/domain"
	"gadgetbay/internal/repos"
	"gadgetbay/internal/services"
)

func TestWishlist(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	wish := services.NewWishlistService(repos.NewWishlistRepo(db), repos.NewProductRepo(db))

	if err := wish.Save("u-buyer", "p-ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown product, got %v", err)
	}

	// saving twice keeps a single entry
	if err := wish.Save("u-buyer", "p-zelda-totk"); err != nil {
		t.Fatal(err)
	}
	if err := wish.Save("u-buyer", "p-zelda-totk"); err != nil {
		t.Fatal(err)
	}
	rows, err := wish.List("u-buyer")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].ProductID != "p-zelda-totk" {
		t.Fatalf("want single saved product, got %+v", rows)
	}

	// lists are per user
	rows, err = wish.List("u-other")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("wishlist leaked across users: %+v", rows)
	}

	if err := wish.Unsave("u-buyer", "p-zelda-totk"); err != nil {
		t.Fatal(err)
	}
	// unsaving an absent entry is fine
	if err := wish.Unsave("u-buyer", "p-zelda-totk"); err != nil {
		t.Fatal(err)
	}
	rows, _ = wish.List("u-buyer")
	if len(rows) != 0 {
		t.Fatalf("wishlist not empty after unsave: %+v", rows)
	}
}
