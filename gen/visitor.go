package gen

import (
	"fmt"
	"math/rand"
	"net/netip"
	"strings"
	"time"
)

// accessTimeLayout is the nginx combined-log timestamp layout.
const accessTimeLayout = "02/Jan/2006:15:04:05 -0700"

// firstOctetCandidates is a weighted enumeration of "plausible public"
// first octets. Weights roughly track real-world allocation density
// (cloud provider ranges dominate).
var firstOctetCandidates = []struct {
	octet  int
	weight int
}{
	{3, 5}, {13, 3}, {18, 2}, {34, 2}, {35, 2}, {52, 8},
	{54, 4}, {66, 2}, {69, 3}, {70, 2}, {99, 1},
	{104, 4}, {107, 2}, {128, 1}, {130, 1}, {139, 1},
	{144, 1}, {151, 1}, {154, 1}, {162, 1}, {167, 1},
	{184, 1}, {185, 1}, {193, 1}, {195, 1}, {199, 1},
	{204, 1}, {205, 1}, {206, 1}, {207, 1}, {208, 1},
	{209, 1}, {216, 1},
}

// reservedBlocks are the networks a generated address must never fall in.
var reservedBlocks = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("224.0.0.0/4"),
	netip.MustParsePrefix("240.0.0.0/4"),
}

// maxIPAttempts bounds the rejection loop in GenerateIPv4. The candidate
// table makes collisions with reserved blocks rare, so hitting the cap
// means the table and the block list disagree badly.
const maxIPAttempts = 1000

// GenerateIPv4 returns a plausible public IPv4 address as a string. The
// first octet is drawn from firstOctetCandidates by weight, the middle
// octets uniformly in [0,255], and the last octet in [1,254] to avoid
// network and broadcast addresses. Candidates inside a reserved block are
// rejected and redrawn, up to maxIPAttempts.
func GenerateIPv4(rng *rand.Rand) (string, error) {
	for attempt := 0; attempt < maxIPAttempts; attempt++ {
		ip := fmt.Sprintf("%d.%d.%d.%d",
			weightedFirstOctet(rng),
			rng.Intn(256),
			rng.Intn(256),
			1+rng.Intn(254))
		addr, err := netip.ParseAddr(ip)
		if err != nil {
			return "", fmt.Errorf("generated unparseable address %q: %w", ip, err)
		}
		if !inReservedBlock(addr) {
			return ip, nil
		}
	}
	return "", fmt.Errorf("no acceptable address after %d attempts", maxIPAttempts)
}

func weightedFirstOctet(rng *rand.Rand) int {
	total := 0
	for _, c := range firstOctetCandidates {
		total += c.weight
	}
	pick := rng.Intn(total)
	for _, c := range firstOctetCandidates {
		pick -= c.weight
		if pick < 0 {
			return c.octet
		}
	}
	// Unreachable: weights sum to total.
	return firstOctetCandidates[0].octet
}

func inReservedBlock(addr netip.Addr) bool {
	for _, block := range reservedBlocks {
		if block.Contains(addr) {
			return true
		}
	}
	return false
}

// GenerateHandle returns a 4-character handle drawn uniformly from the
// uppercase Latin alphabet. Handles are not unique across calls.
func GenerateHandle(rng *rand.Rand) string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		b.WriteByte(byte('A' + rng.Intn(26)))
	}
	return b.String()
}

// VisitEvent is one synthetic page visit. It lives for a single tick; only
// its access-log projection is durable.
type VisitEvent struct {
	Timestamp     time.Time
	SourceAddress string
	UserAgent     string
	Referrer      string
}

// NewVisit assembles a VisitEvent for the given instant, drawing the
// address, user agent and referrer from rng.
func NewVisit(now time.Time, rng *rand.Rand, cfg *Config) (VisitEvent, error) {
	ip, err := GenerateIPv4(rng)
	if err != nil {
		return VisitEvent{}, err
	}
	return VisitEvent{
		Timestamp:     now,
		SourceAddress: ip,
		UserAgent:     cfg.UserAgents[rng.Intn(len(cfg.UserAgents))],
		Referrer:      cfg.Referrers[rng.Intn(len(cfg.Referrers))],
	}, nil
}

// AccessLogLine renders the visit as one nginx combined-log line. The byte
// count field is a constant placeholder, not a measured size.
func (v VisitEvent) AccessLogLine(urlPath string, responseBytes int) string {
	return fmt.Sprintf("%s - - [%s] \"GET %s HTTP/1.1\" 200 %d \"%s\" \"%s\"",
		v.SourceAddress,
		v.Timestamp.Format(accessTimeLayout),
		urlPath,
		responseBytes,
		v.Referrer,
		v.UserAgent)
}
