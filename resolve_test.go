package kenyaloc

import (
	"math"

	. "gopkg.in/check.v1"
)

func (s *KenyalocSuite) TestResolveLabelHit(c *C) {
	origin := Point{Lat: -0.0917, Lon: 34.7680}
	r, ok := s.idx.ResolveLabelOrNearest("Westlands", &origin)
	c.Assert(ok, Equals, true)
	c.Check(r.Source, Equals, SourceLabel)
	c.Check(r.Label(), Equals, "Westlands, Nairobi")
	c.Check(r.Score, Equals, ScoreExact)
	c.Check(r.DistanceKm, Equals, 0.0)
}

func (s *KenyalocSuite) TestResolvePrefixScoreCarried(c *C) {
	r, ok := s.idx.ResolveLabelOrNearest("Westl", nil)
	c.Assert(ok, Equals, true)
	c.Check(r.Source, Equals, SourceLabel)
	c.Check(r.Score, Equals, ScorePrefix)
}

func (s *KenyalocSuite) TestResolveNearestFallback(c *C) {
	origin := Point{Lat: -0.10, Lon: 34.75}
	r, ok := s.idx.ResolveLabelOrNearest("somewhere unknown", &origin)
	c.Assert(ok, Equals, true)
	c.Check(r.Source, Equals, SourceNearest)
	c.Check(r.Label(), Equals, "Kisumu City, Kisumu")
	c.Check(r.DistanceKm > 0, Equals, true)
	c.Check(r.DistanceKm < 5, Equals, true)
}

func (s *KenyalocSuite) TestResolveEmptyLabelUsesOrigin(c *C) {
	origin := Point{Lat: -1.2676, Lon: 36.8108}
	r, ok := s.idx.ResolveLabelOrNearest("", &origin)
	c.Assert(ok, Equals, true)
	c.Check(r.Source, Equals, SourceNearest)
	c.Check(r.Town.Name, Equals, "Westlands")
}

func (s *KenyalocSuite) TestResolveNoOrigin(c *C) {
	_, ok := s.idx.ResolveLabelOrNearest("somewhere unknown", nil)
	c.Check(ok, Equals, false)
}

func (s *KenyalocSuite) TestResolveInvalidOrigin(c *C) {
	for _, origin := range []Point{{Lat: 95, Lon: 0}, {Lat: math.NaN(), Lon: 36}} {
		_, ok := s.idx.ResolveLabelOrNearest("somewhere unknown", &origin)
		c.Check(ok, Equals, false, Commentf("origin %v", origin))
	}
}
