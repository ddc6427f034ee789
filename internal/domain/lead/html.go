package lead

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// The HTML bodies below are embedded into the dealer-branded layout by the
// email sender before delivery.

func (p *MessageLead) HTML() string {
	return fmt.Sprintf(`<h2>Message Us Lead</h2>
<p><b>Name:</b> %s<br/>
<b>Email:</b> %s<br/>
<b>Phone:</b> %s</p>
<p><b>Message:</b><br/>%s</p>
<p>Vehicle ID: %s | Trade-in: %s</p>`,
		p.Name, p.Email, p.Phone, orEmpty(p.Message), orDash(p.VehicleID), boolOrDash(p.TradeIn))
}

func (p *OfferLead) HTML() string {
	amount := ""
	if p.OfferAmount != nil {
		amount = humanize.FormatFloat("#,###.##", *p.OfferAmount)
	}
	return fmt.Sprintf(`<h2>Make an Offer Lead</h2>
<p><b>Name:</b> %s<br/>
<b>Email:</b> %s<br/>
<b>Phone:</b> %s<br/>
<b>Offer:</b> $%s<br/>
Vehicle ID: %s
</p>`,
		p.Name, p.Email, p.Phone, amount, orDash(p.VehicleID))
}

// Finance applications carry sensitive fields, so the notification only
// points at the stored record.
func (p *ApplyOnline) HTML() string {
	return `<h2>Apply Online Lead</h2>
<p>Your finance application has been submitted. Details are attached in the admin database.</p>`
}

func (p *SellTrade) HTML() string {
	return fmt.Sprintf(`<h2>Sell or Trade Lead</h2>
<p><b>Name:</b> %s<br/>
<b>Email:</b> %s<br/>
<b>Phone:</b> %s<br/>
<b>ZIP:</b> %s</p>
<h3>Vehicle</h3>
<p><b>%d %s %s %s</b><br/>
Mileage: %s<br/>
VIN: %s<br/>
Condition: %s<br/>
Payoff: %s
</p>
<p>Files attached: %d</p>`,
		p.Name, p.Email, p.Phone, p.Zip,
		p.Year, p.Make, p.Model, orEmpty(p.Trim),
		intOrEmpty(p.Mileage), orDash(p.VIN), orDash(p.Condition), orDash(p.PayoffInfo),
		len(p.Files))
}

func (p *CarFinder) HTML() string {
	return fmt.Sprintf(`<h2>Car Finder Lead</h2>
<p><b>Name:</b> %s<br/>
<b>Email:</b> %s<br/>
<b>Phone:</b> %s</p>
<p><b>Criteria:</b><br/>
Year: %s-%s<br/>
Make/Model: %s %s<br/>
Body: %s<br/>
Mileage: %s-%s<br/>
Price: %s-%s<br/>
Notes: %s
</p>`,
		p.Name, p.Email, p.Phone,
		intOrEmpty(p.YearMin), intOrEmpty(p.YearMax),
		orEmpty(p.Make), orEmpty(p.Model),
		orEmpty(p.BodyStyle),
		intOrEmpty(p.MileageMin), intOrEmpty(p.MileageMax),
		floatOrEmpty(p.PriceMin), floatOrEmpty(p.PriceMax),
		orEmpty(p.Notes))
}

func (p *TestDrive) HTML() string {
	return fmt.Sprintf(`<h2>Test Drive Lead</h2>
<p><b>Name:</b> %s<br/>
<b>Email:</b> %s<br/>
<b>Phone:</b> %s<br/>
<b>Preferred:</b> %s<br/>
Vehicle: %s<br/>
Notes: %s
</p>`,
		p.Name, p.Email, p.Phone, p.PreferredDatetime, orDash(p.Vehicle), orEmpty(p.Notes))
}

func (p *Referral) HTML() string {
	return fmt.Sprintf(`<h2>Referral Lead</h2>
<p><b>Your Name:</b> %s (%s, %s)<br/>
<b>Friend:</b> %s (%s, %s)<br/>
Vehicle interest: %s
</p>`,
		p.YourName, p.YourPhone, p.YourEmail,
		p.FriendName, p.FriendPhone, p.FriendEmail,
		orDash(p.InterestedVehicle))
}

func (p *ContactUs) HTML() string {
	return fmt.Sprintf(`<h2>Contact Us Lead</h2>
<p><b>Name:</b> %s<br/>
<b>Email:</b> %s<br/>
<b>Phone:</b> %s<br/>
<b>Message:</b><br/>%s
</p>`,
		p.Name, p.Email, p.Phone, p.Message)
}

func (p *Feedback) HTML() string {
	return fmt.Sprintf(`<h2>Private Feedback</h2>
<p>Rating: %d</p>
<p>Name: %s | Phone: %s | Email: %s</p>
<p>%s</p>`,
		p.Rating, orDash(p.Name), orDash(p.Phone), orDash(p.Email), orEmpty(p.Comments))
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolOrDash(b *bool) string {
	if b == nil {
		return "-"
	}
	return strconv.FormatBool(*b)
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
