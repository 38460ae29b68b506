package feed

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/woodini-site/internal/application/dto"
)

func TestBuildRSS(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []dto.NewsResponse{
		{ID: 7, Title: "Скидки & акции", Content: "<p>До 30%</p>", Category: "promo", IsPublished: true, CreatedAt: created},
	}

	out, err := BuildRSS(Channel{Title: "Woodini", Description: "Напольные покрытия", Link: "https://woodini.ru/"}, items, time.Now())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Equal(t, "2.0", doc.Root().SelectAttrValue("version", ""))

	ch := doc.FindElement("/rss/channel")
	require.NotNil(t, ch)
	assert.Equal(t, "Woodini", ch.SelectElement("title").Text())
	assert.Equal(t, "https://woodini.ru/", ch.SelectElement("link").Text())
	assert.Equal(t, created.Format(time.RFC1123Z), ch.SelectElement("lastBuildDate").Text())

	item := doc.FindElement("/rss/channel/item")
	require.NotNil(t, item)
	assert.Equal(t, "Скидки & акции", item.SelectElement("title").Text())
	assert.Equal(t, "https://woodini.ru/#news-7", item.SelectElement("link").Text())
	assert.Equal(t, "<p>До 30%</p>", item.SelectElement("description").Text())
	assert.Equal(t, "news-7", item.SelectElement("guid").Text())
	assert.Equal(t, "promo", item.SelectElement("category").Text())
}

func TestBuildRSS_SinNoticias(t *testing.T) {
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	out, err := BuildRSS(Channel{Title: "Woodini", Link: "https://woodini.ru"}, nil, now)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Nil(t, doc.FindElement("/rss/channel/item"))
	assert.Equal(t, now.Format(time.RFC1123Z), doc.FindElement("/rss/channel/lastBuildDate").Text())
}
