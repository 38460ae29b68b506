// Package feed genera el RSS 2.0 de las noticias publicadas.
package feed

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/woodini-site/internal/application/dto"
)

// Channel cabecera del canal.
type Channel struct {
	Title       string
	Description string
	Link        string // URL base del sitio, sin barra final
	Language    string
}

// BuildRSS serializa items (ya filtrados a publicados) en RSS 2.0.
func BuildRSS(ch Channel, items []dto.NewsResponse, now time.Time) ([]byte, error) {
	link := strings.TrimRight(ch.Link, "/")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(ch.Title)
	channel.CreateElement("link").SetText(link + "/")
	channel.CreateElement("description").SetText(ch.Description)
	if ch.Language != "" {
		channel.CreateElement("language").SetText(ch.Language)
	}
	lastBuild := now
	if len(items) > 0 {
		lastBuild = items[0].CreatedAt
	}
	channel.CreateElement("lastBuildDate").SetText(lastBuild.Format(time.RFC1123Z))

	for _, n := range items {
		itemLink := fmt.Sprintf("%s/#news-%d", link, n.ID)
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(n.Title)
		item.CreateElement("link").SetText(itemLink)
		item.CreateElement("description").CreateCData(n.Content)
		item.CreateElement("category").SetText(n.Category)
		guid := item.CreateElement("guid")
		guid.CreateAttr("isPermaLink", "false")
		guid.SetText("news-" + strconv.FormatInt(n.ID, 10))
		item.CreateElement("pubDate").SetText(n.CreatedAt.Format(time.RFC1123Z))
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("serializar rss: %w", err)
	}
	return out.Bytes(), nil
}
