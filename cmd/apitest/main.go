package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/deuexpo/keepa/internal/api"
	"github.com/deuexpo/keepa/internal/keepatime"
	"github.com/deuexpo/keepa/internal/series"
)

const testASIN = "B0088PUEPK"

func main() {
	// .env is optional; the shell environment takes precedence.
	_ = godotenv.Load()

	accessKey := os.Getenv("KEEPA_ACCESS_KEY")
	if accessKey == "" {
		log.Fatal("KEEPA_ACCESS_KEY is required")
	}

	client := api.NewClient(accessKey, api.DomainCom,
		api.WithTimeout(30*time.Second),
	)

	// Generous budget: a drained token bucket can stall requests for a
	// minute or more.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Test 1: Token status
	fmt.Println("=== Testing Token Status ===")
	status, err := client.GetTokenStatus(ctx)
	if err != nil {
		log.Fatalf("GetTokenStatus failed: %v", err)
	}
	fmt.Printf("Tokens left: %d\n", status.TokensLeft)
	fmt.Printf("Refill rate: %d per minute\n", status.RefillRate)

	// Test 2: Product with history
	fmt.Printf("\n=== Testing GetProducts (%s) ===\n", testASIN)
	products, err := client.GetProducts(ctx, []string{testASIN}, api.ProductsOptions{
		History: true,
		Rating:  true,
	})
	if err != nil {
		log.Fatalf("GetProducts failed: %v", err)
	}
	if len(products) == 0 {
		log.Fatal("GetProducts returned no records")
	}
	product := products[0]
	fmt.Printf("Title: %s\n", product.Title)
	fmt.Printf("Brand: %s\n", product.Brand)
	fmt.Printf("Tracking since: %s\n", keepatime.Time(product.TrackingSince).Format("2006-01-02"))
	for _, f := range []api.Field{api.FieldAmazon, api.FieldNew, api.FieldSales} {
		fmt.Printf("%s history: %d samples\n", f, len(product.FieldHistory(f))/2)
	}

	// Test 3: Daily interpolation of the Amazon price history
	fmt.Println("\n=== Testing Daily Interpolation ===")
	daily := series.Interpolate(series.Format(product.FieldHistory(api.FieldAmazon), 0), series.Min)
	fmt.Printf("Daily points: %d\n", len(daily))
	tail := daily
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	for _, d := range tail {
		fmt.Printf("  %s  %d\n", d.Date.Format("2006-01-02"), d.Value)
	}

	if product.RootCategory != 0 {
		// Test 4: Category lookup for the product's root category
		fmt.Printf("\n=== Testing GetCategories (%d) ===\n", product.RootCategory)
		cats, err := client.GetCategories(ctx, []int64{product.RootCategory}, api.CategoriesOptions{})
		if err != nil {
			log.Fatalf("GetCategories failed: %v", err)
		}
		for _, cat := range cats.Categories {
			fmt.Printf("  %d: %s (%d products)\n", cat.CatID, cat.Name, cat.ProductCount)
		}

		// Test 5: Best sellers of that category
		fmt.Printf("\n=== Testing GetBestSellers (%d) ===\n", product.RootCategory)
		best, err := client.GetBestSellers(ctx, product.RootCategory, api.BestSellersOptions{})
		if err != nil {
			log.Fatalf("GetBestSellers failed: %v", err)
		}
		fmt.Printf("Ranked ASINs: %d\n", len(best.ASINList))
		for i, asin := range best.ASINList {
			if i >= 5 {
				break
			}
			fmt.Printf("  %d. %s\n", i+1, asin)
		}
	}

	if last := client.LastResponse(); last != nil {
		fmt.Printf("\nTokens left after run: %d\n", last.TokensLeft)
	}

	fmt.Println("\n=== All API tests passed! ===")
}
