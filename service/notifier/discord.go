package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain/notify"
)

var kindColors = map[notify.Kind]int{
	notify.KindInfo:    0x3498db,
	notify.KindSuccess: 0x2ecc71,
	notify.KindWarning: 0xf1c40f,
	notify.KindError:   0xe74c3c,
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type DiscordCfg struct {
	BotKey    string
	ChannelId string
	// Kinds limits which notifications are posted, empty posts all of them
	Kinds []notify.Kind
}

type discordNotifier struct {
	channelId string
	kinds     map[notify.Kind]bool
	session   embedSender
}

func NewDiscordNotifier(cfg DiscordCfg) (notify.Notifier, error) {
	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		log.Log().WithField("err", err).Error("discordgo.New failed")
		return nil, err
	}
	return newDiscordNotifier(cfg, session), nil
}

func newDiscordNotifier(cfg DiscordCfg, session embedSender) *discordNotifier {
	kinds := map[notify.Kind]bool{}
	for _, k := range cfg.Kinds {
		kinds[k] = true
	}
	return &discordNotifier{
		channelId: cfg.ChannelId,
		kinds:     kinds,
		session:   session,
	}
}

// Notify posts an embed, failures are logged and never surface to the caller
func (n *discordNotifier) Notify(c ctx.Ctx, kind notify.Kind, message string) {
	if len(n.kinds) > 0 && !n.kinds[kind] {
		return
	}
	msg := &discordgo.MessageEmbed{
		Title:       string(kind),
		Description: message,
		Color:       kindColors[kind],
		Timestamp:   timeNow().UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if _, err := n.session.ChannelMessageSendEmbed(n.channelId, msg); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"channel": n.channelId,
		}).Warn("ChannelMessageSendEmbed failed")
	}
}
