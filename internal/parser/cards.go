package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fringe-watch/edfringe-parser/internal"
	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/selector"
)

// ParseSearchResults extracts show cards from a whats-on search results
// page.
func (p *Parser) ParseSearchResults(html string) ([]*internal.ShowCard, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var cards []*internal.ShowCard

	elements := doc.Find(selector.EventCard.String())
	log.GetLogger().WithField("CardCount", elements.Length()).Debug("found show cards")

	elements.Each(func(_ int, element *goquery.Selection) {
		card := p.parseShowCard(element)
		if card != nil {
			cards = append(cards, card)
		}
	})

	return cards, nil
}

func (p *Parser) parseShowCard(element *goquery.Selection) *internal.ShowCard {
	titleLink := element.Find(selector.EventCardTitleLink.String()).First()
	if titleLink.Length() == 0 {
		log.GetLogger().Debug("no title link found in card")
		return nil
	}

	title := elementText(titleLink)
	href, _ := titleLink.Attr("href")
	href = p.canonicalShowUrl(href)

	performer := ""
	if el := element.Find(selector.EventCardPerformer.String()).First(); el.Length() > 0 {
		performer = elementText(el)
	}

	duration := ""
	if el := element.Find(selector.EventCardDuration.String()).First(); el.Length() > 0 {
		duration = elementText(el)
	}

	dateBlockHtml := ""
	if el := element.Find(selector.EventCardDateBlock.String()).First(); el.Length() > 0 {
		if h, err := goquery.OuterHtml(el); err == nil {
			dateBlockHtml = h
		}
	}

	return &internal.ShowCard{
		Title:         title,
		Url:           href,
		Performer:     performer,
		Duration:      duration,
		DateBlockHtml: dateBlockHtml,
	}
}

// canonicalShowUrl absolutizes a card href. Card hrefs use /whats-on/...
// but the canonical show URLs live under /tickets/whats-on/....
func (p *Parser) canonicalShowUrl(href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}

	if strings.HasPrefix(href, "/whats-on/") {
		href = "/tickets" + href
	}

	return strings.TrimRight(p.BaseUrl, "/") + href
}
