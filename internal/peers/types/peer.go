package types

import (
	"fmt"

	"wgpeer/cmd/wgpeer/config"
	"wgpeer/internal/templates"

	"github.com/aymerick/raymond"
)

// allIPv4 makes the tunnel carry every IPv4 destination.
const allIPv4 = "0.0.0.0/0"

// Peer is a validated request bound to the paths and binaries it will be rendered with.
type Peer struct {
	Request ProvisioningRequest

	// ConfigPath is where the tunnel config is written and where `wg setconf` reads it.
	ConfigPath string

	IPCommand string
	WGCommand string

	ServiceUnitTemplatePath string
}

func NewPeer(request ProvisioningRequest, configPath string, cfg *config.Configuration) *Peer {
	return &Peer{
		Request:    request,
		ConfigPath: configPath,
		IPCommand:  cfg.IPCommand,
		WGCommand:  cfg.WGCommand,

		ServiceUnitTemplatePath: cfg.ServiceUnitTemplatePath,
	}
}

func (p *Peer) WGConfig() WGConfig {
	allowedIPs, _ := ParseIPNetMarshable(allIPv4, true)

	return WGConfig{
		Interface: WGConfigInterface{
			PrivateKey: p.Request.PrivateKey,
		},
		Peers: []WGConfigPeer{
			{
				PublicKey: p.Request.ServerPublicKey,
				Endpoint: Endpoint{
					Host: p.Request.ServerIP,
					Port: p.Request.ServerPort,
				},
				AllowedIPs: []IPNetMarshable{*allowedIPs},
			},
		},
	}
}

func (p *Peer) GetFormattedWireguardConfig() (*string, error) {
	wgConfig := p.WGConfig()

	return wgConfig.ToINI()
}

type unitLine struct {
	Comment string
	Exec    string
}

func toUnitLines(steps []Step) []unitLine {
	lines := make([]unitLine, len(steps))

	for i, step := range steps {
		lines[i] = unitLine{Comment: step.Comment, Exec: step.ExecLine()}
	}

	return lines
}

func (p *Peer) GetFormattedServiceUnit() (*string, error) {
	template, err := templates.Configs.ReadFile(p.ServiceUnitTemplatePath)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRenderFailure, err)
	}

	tpl, err := raymond.Parse(string(template))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRenderFailure, err)
	}

	unitContents, err := tpl.Exec(map[string]interface{}{
		"Interface": p.Request.InterfaceName,
		"ExecStart": toUnitLines(p.ActivationSteps()),
		"ExecStop":  toUnitLines(p.DeactivationSteps()),
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRenderFailure, err)
	}

	return &unitContents, nil
}
