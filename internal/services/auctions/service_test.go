package auctions

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/skytracker/skytracker/internal/model"
	"github.com/skytracker/skytracker/internal/services/enrich"
	"github.com/skytracker/skytracker/internal/services/listing"
	"github.com/skytracker/skytracker/internal/storage/memory"
	"github.com/skytracker/skytracker/internal/testutil"
	"github.com/skytracker/skytracker/internal/upstream"
)

const (
	aliceID = "0f1e2d3c4b5a69788796a5b4c3d2e1f0"
	bobID   = "11112222333344445555666677778888"
	ghostID = "99990000999900009999000099990000"
)

type ServiceSuite struct {
	suite.Suite
	fake    *testutil.FakeUpstream
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.fake = testutil.NewFakeUpstream(s.T())
	s.fake.AddPlayer(testutil.FakePlayer{ID: aliceID, Name: "Alice", Avatar: "https://example.com/alice.png"})
	s.fake.AddPlayer(testutil.FakePlayer{ID: bobID, Name: "Bob"})

	cfg := upstream.Config{BaseURL: s.fake.URL(), Logger: testutil.NopLogger()}
	pipeline := enrich.New(upstream.NewPlayerDBClient(cfg), memory.New(), enrich.DefaultConfig(), testutil.NopLogger())
	s.service = New(upstream.NewHypixelClient(cfg), pipeline, listing.NewRenderer(10), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestBrowseEnrichesNames() {
	s.fake.SetAuctions([]map[string]any{
		testutil.Auction("a1", "Diamond Sword", "RARE", aliceID, bobID, ghostID),
	})

	page, err := s.service.Browse(s.ctx, Query{Page: 1})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)

	item := page.Items[0]
	s.Equal("Alice", item.Seller.Name)
	s.Equal("https://example.com/alice.png", item.Seller.AvatarURL)
	s.Equal("Bob", item.CoOwners[0].Name)
	s.Equal(ghostID, item.CoOwners[1].Name)
	s.Equal("text-blue-500", item.TierColor)
}

func (s *ServiceSuite) TestBrowseSearchAndPaging() {
	var auctions []map[string]any
	for i := 0; i < 25; i++ {
		auctions = append(auctions, testutil.Auction(fmt.Sprintf("s%d", i), fmt.Sprintf("Diamond Sword %d", i), "RARE", aliceID))
	}
	auctions = append(auctions, testutil.Auction("bow", "Runaan's Bow", "LEGENDARY", bobID))
	s.fake.SetAuctions(auctions)

	page, err := s.service.Browse(s.ctx, Query{Search: "SWORD", Page: 3})
	s.Require().NoError(err)
	s.Equal(3, page.TotalPages)
	s.Equal(25, page.TotalResults)
	s.Len(page.Items, 5)
}

func (s *ServiceSuite) TestBrowseResolvesEachIdentifierOnce() {
	s.fake.SetAuctions([]map[string]any{
		testutil.Auction("a1", "Sword", "RARE", aliceID, bobID),
		testutil.Auction("a2", "Bow", "RARE", bobID, aliceID),
	})

	_, err := s.service.Browse(s.ctx, Query{Page: 1})
	s.Require().NoError(err)
	_, err = s.service.Browse(s.ctx, Query{Page: 1})
	s.Require().NoError(err)

	s.Equal(1, s.fake.Lookups(aliceID))
	s.Equal(1, s.fake.Lookups(bobID))
}

func (s *ServiceSuite) TestBrowseSnapshotFailure() {
	s.fake.SetAuctionsStatus(http.StatusBadGateway)

	_, err := s.service.Browse(s.ctx, Query{Page: 1})
	s.ErrorIs(err, model.ErrUpstream)
}

func (s *ServiceSuite) TestBrowseNameFailureDegrades() {
	s.fake.FailLookup(aliceID)
	s.fake.SetAuctions([]map[string]any{
		testutil.Auction("a1", "Sword", "RARE", aliceID, bobID),
	})

	page, err := s.service.Browse(s.ctx, Query{Page: 1})
	s.Require().NoError(err)
	s.Equal(aliceID, page.Items[0].Seller.Name)
	s.Equal("Bob", page.Items[0].CoOwners[0].Name)
}
