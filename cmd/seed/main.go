package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/lib/pq"

	"github.com/thecanopi/The-Canopi-Website/internal/config"
	"github.com/thecanopi/The-Canopi-Website/internal/db"
	"github.com/thecanopi/The-Canopi-Website/internal/identity"
	"github.com/thecanopi/The-Canopi-Website/internal/utils"
)

type seedCaseStudy struct {
	Title     string
	Industry  string
	Challenge string
	Solution  string
	Outcome   string
	Tags      []string
}

type seedPost struct {
	Title    string
	Category string
	Content  string
	Excerpt  string
	Author   string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.Migrate(pool); err != nil {
		log.Fatal(err)
	}

	caseStudies := []seedCaseStudy{
		{
			Title:     "Scaling a fintech data platform",
			Industry:  "Financial services",
			Challenge: "Reporting pipelines took hours and blocked month-end close.",
			Solution:  "Rebuilt the warehouse model and moved transforms to incremental jobs.",
			Outcome:   "Month-end reporting dropped from six hours to twelve minutes.",
			Tags:      []string{"data", "fintech"},
		},
		{
			Title:     "Go-to-market for a healthtech launch",
			Industry:  "Healthcare",
			Challenge: "A strong product had no positioning and no repeatable sales motion.",
			Solution:  "Ran customer discovery and built an ICP-driven outbound playbook.",
			Outcome:   "First ten enterprise pilots signed within two quarters.",
			Tags:      []string{"strategy", "healthtech"},
		},
		{
			Title:     "Cost reduction in cloud operations",
			Industry:  "Retail",
			Challenge: "Cloud spend grew faster than traffic with no ownership of the bill.",
			Solution:  "Introduced unit economics dashboards and rightsizing reviews.",
			Outcome:   "Forty percent lower spend at higher peak capacity.",
			Tags:      []string{"operations", "cloud"},
		},
	}

	var existing int
	if err := pool.GetContext(ctx, &existing, `SELECT COUNT(*) FROM case_studies`); err != nil {
		log.Fatal(err)
	}
	if existing == 0 {
		for _, cs := range caseStudies {
			_, err := pool.ExecContext(ctx, `
				INSERT INTO case_studies (title, industry, challenge, solution, outcome, tags, is_published)
				VALUES ($1, $2, $3, $4, $5, $6, true)`,
				cs.Title, cs.Industry, cs.Challenge, cs.Solution, cs.Outcome, pq.Array(cs.Tags))
			if err != nil {
				log.Fatalf("seed case study %q: %v", cs.Title, err)
			}
		}
	}

	posts := []seedPost{
		{
			Title:    "Why consulting engagements fail at handover",
			Category: "blog",
			Content:  "Most engagements do not fail in the work, they fail in the transfer of ownership...",
			Excerpt:  "Ownership transfer is the phase nobody budgets for.",
			Author:   "The Canopi Team",
		},
		{
			Title:    "A practical guide to discovery sprints",
			Category: "article",
			Content:  "A discovery sprint compresses weeks of stakeholder interviews into five working days...",
			Excerpt:  "Five days, one decision-ready readout.",
			Author:   "The Canopi Team",
		},
	}

	for _, p := range posts {
		_, err := pool.ExecContext(ctx, `
			INSERT INTO blog_posts (title, slug, category, content, excerpt, author, is_published, published_at)
			VALUES ($1, $2, $3, $4, $5, $6, true, now())
			ON CONFLICT (slug) DO NOTHING`,
			p.Title, utils.Slugify(p.Title), p.Category, p.Content, p.Excerpt, p.Author)
		if err != nil {
			log.Fatalf("seed blog post %q: %v", p.Title, err)
		}
	}

	sections := map[string]string{
		"hero":    `{"headline": "Strategy that ships", "subheadline": "Consulting for teams that want outcomes, not decks."}`,
		"about":   `{"body": "The Canopi is a boutique consulting firm for product and data organisations."}`,
		"footer":  `{"email": "hello@thecanopi.ai"}`,
		"contact": `{"headline": "Tell us where it hurts"}`,
	}
	for key, content := range sections {
		_, err := pool.ExecContext(ctx, `
			INSERT INTO site_content (section_key, content, updated_by)
			VALUES ($1, $2::jsonb, 'seed')
			ON CONFLICT (section_key) DO NOTHING`,
			key, content)
		if err != nil {
			log.Fatalf("seed site content %q: %v", key, err)
		}
	}

	// Grants the admin role to an existing auth user. The auth provider owns
	// account creation, so the user id has to be supplied from outside.
	if adminID := os.Getenv("ADMIN_USER_ID"); adminID != "" {
		_, err := pool.ExecContext(ctx, `
			INSERT INTO user_roles (user_id, role)
			VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`,
			adminID, identity.RoleAdmin)
		if err != nil {
			log.Fatalf("seed admin role: %v", err)
		}
		log.Printf("admin role granted to %s", adminID)
	}

	log.Println("seed completed")
}
