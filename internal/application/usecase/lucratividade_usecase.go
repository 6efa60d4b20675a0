package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/application/dto"
	"github.com/jhoicas/padaria-pdv/internal/application/vendas"
	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
	"github.com/jhoicas/padaria-pdv/internal/domain/lucratividade"
	"github.com/jhoicas/padaria-pdv/internal/domain/repository"
	"github.com/jhoicas/padaria-pdv/pkg/logger"
)

// RelatorioPDFGenerator gera o PDF do relatório de lucratividade.
type RelatorioPDFGenerator interface {
	GenerateLucratividade(rel *dto.LucratividadeResponse) ([]byte, error)
}

// LucratividadeUseCase relatório de lucro por produto e resumo do período.
type LucratividadeUseCase struct {
	fetcher           *vendas.Fetcher
	catalogo          repository.CatalogoRepository
	pdf               RelatorioPDFGenerator
	fracaoInvisivel   decimal.Decimal
	custosFixosPadrao decimal.Decimal
	log               *logger.Logger
	agora             Relogio
}

// NewLucratividadeUseCase constrói o caso de uso. pdf pode ser nil se o PDF não for servido.
func NewLucratividadeUseCase(
	fetcher *vendas.Fetcher,
	catalogo repository.CatalogoRepository,
	pdf RelatorioPDFGenerator,
	fracaoInvisivel, custosFixosPadrao decimal.Decimal,
	log *logger.Logger,
) *LucratividadeUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &LucratividadeUseCase{
		fetcher:           fetcher,
		catalogo:          catalogo,
		pdf:               pdf,
		fracaoInvisivel:   fracaoInvisivel,
		custosFixosPadrao: custosFixosPadrao,
		log:               log,
		agora:             time.Now,
	}
}

// WithRelogio substitui o relógio (testes).
func (uc *LucratividadeUseCase) WithRelogio(r Relogio) *LucratividadeUseCase {
	uc.agora = r
	return uc
}

type catalogo struct {
	varejo      []entity.ProdutoVarejo
	receitas    []entity.Receita
	composicoes []entity.Composicao
	insumos     []entity.Insumo
	precos      []entity.Preco
}

// GetRelatorio monta o relatório do período.
//
// Três leituras em paralelo:
//  1. vendas finalizadas → itens (paginado + lotes, tolera falhas parciais)
//  2. catálogo (varejo, receitas, composições, insumos, preços)
//  3. custos fixos ativos, se não vierem na query
func (uc *LucratividadeUseCase) GetRelatorio(ctx context.Context, req dto.LucratividadeRequest) (*dto.LucratividadeResponse, error) {
	inicio, fim, err := parsePeriodo(req.DataInicio, req.DataFim, uc.agora())
	if err != nil {
		return nil, err
	}
	var custosInformados *decimal.Decimal
	if strings.TrimSpace(req.CustosFixos) != "" {
		v, err := parseValor("custosFixos", req.CustosFixos)
		if err != nil {
			return nil, err
		}
		custosInformados = &v
	}

	// ── Goroutines ────────────────────────────────────────────────────────────
	type vendasResult struct {
		vendas  []entity.Venda
		itens   []entity.VendaItem
		parcial bool
	}
	type catalogoResult struct {
		cat catalogo
		err error
	}
	type custosResult struct {
		total decimal.Decimal
		err   error
	}

	vendasCh := make(chan vendasResult, 1)
	catCh := make(chan catalogoResult, 1)
	custosCh := make(chan custosResult, 1)

	go func() {
		vr := uc.fetcher.BuscarFinalizadas(ctx, inicio, fim)
		ids := make([]string, len(vr.Dados))
		for i, v := range vr.Dados {
			ids[i] = v.ID
		}
		ir := uc.fetcher.BuscarItens(ctx, ids)
		vendasCh <- vendasResult{vr.Dados, ir.Dados, vr.Parcial() || ir.Parcial()}
	}()
	go func() {
		cat, err := uc.carregarCatalogo(ctx)
		catCh <- catalogoResult{cat, err}
	}()
	go func() {
		if custosInformados != nil {
			custosCh <- custosResult{total: *custosInformados}
			return
		}
		total, err := uc.custosFixos(ctx)
		custosCh <- custosResult{total, err}
	}()

	vr := <-vendasCh
	cr := <-catCh
	fr := <-custosCh

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("lucratividade: %w", err)
	}
	if cr.err != nil {
		return nil, fmt.Errorf("lucratividade: catálogo: %w", cr.err)
	}
	if fr.err != nil {
		return nil, fmt.Errorf("lucratividade: custos fixos: %w", fr.err)
	}

	rel := lucratividade.Processar(lucratividade.Entrada{
		Vendas:      vr.vendas,
		Itens:       vr.itens,
		Precos:      cr.cat.precos,
		Varejo:      cr.cat.varejo,
		Receitas:    cr.cat.receitas,
		Composicoes: cr.cat.composicoes,
		Insumos:     cr.cat.insumos,
	}, fr.total, uc.fracaoInvisivel)

	for _, nr := range rel.NaoResolvidos {
		uc.log.Debug().Str("tipo", string(nr.Tipo)).Str("id", nr.RawID).Str("motivo", nr.Motivo).
			Msg("lucratividade: itens excluídos do relatório")
	}

	resp := toLucratividadeResponse(rel)
	resp.Periodo = dto.PeriodoDTO{DataInicio: inicio.Format(layoutData), DataFim: fim.Format(layoutData)}
	resp.Parcial = vr.parcial
	return resp, nil
}

// GetRelatorioPDF mesmo relatório, renderizado em PDF.
func (uc *LucratividadeUseCase) GetRelatorioPDF(ctx context.Context, req dto.LucratividadeRequest) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("lucratividade: gerador de PDF não configurado")
	}
	rel, err := uc.GetRelatorio(ctx, req)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.GenerateLucratividade(rel)
	if err != nil {
		return nil, fmt.Errorf("lucratividade: gerar PDF: %w", err)
	}
	return out, nil
}

func (uc *LucratividadeUseCase) carregarCatalogo(ctx context.Context) (catalogo, error) {
	var c catalogo
	var err error
	if c.varejo, err = uc.catalogo.ListProdutosVarejo(ctx); err != nil {
		return c, err
	}
	if c.receitas, err = uc.catalogo.ListReceitas(ctx); err != nil {
		return c, err
	}
	if c.composicoes, err = uc.catalogo.ListComposicoes(ctx, nil); err != nil {
		return c, err
	}
	if c.insumos, err = uc.catalogo.ListInsumos(ctx, nil); err != nil {
		return c, err
	}
	if c.precos, err = uc.catalogo.ListPrecos(ctx); err != nil {
		return c, err
	}
	return c, nil
}

// custosFixos soma dos custos_fixos ativos; sem nenhum cadastrado, o padrão da configuração.
func (uc *LucratividadeUseCase) custosFixos(ctx context.Context) (decimal.Decimal, error) {
	total, ok, err := uc.catalogo.SumCustosFixosAtivos(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return uc.custosFixosPadrao, nil
	}
	return total, nil
}

func toLucratividadeResponse(rel lucratividade.Relatorio) *dto.LucratividadeResponse {
	s := rel.Resumo
	resp := &dto.LucratividadeResponse{
		Resumo: dto.ResumoLucratividadeDTO{
			ReceitaTotal:       s.ReceitaTotal.Round(2),
			CustoProdutosTotal: s.CustoProdutosTotal.Round(2),
			LucroBrutoTotal:    s.LucroBrutoTotal.Round(2),
			CustosFixosTotal:   s.CustosFixosTotal.Round(2),
			LucroLiquido:       s.LucroLiquido.Round(2),
			MargemBruta:        s.MargemBruta.Round(4),
			MargemLiquida:      s.MargemLiquida.Round(4),
			ROI:                s.ROI.Round(4),
		},
		Produtos:      make([]dto.LinhaLucratividadeDTO, 0, len(rel.Linhas)),
		NaoResolvidos: make([]dto.NaoResolvidoDTO, 0, len(rel.NaoResolvidos)),
	}
	for _, l := range rel.Linhas {
		resp.Produtos = append(resp.Produtos, dto.LinhaLucratividadeDTO{
			ProdutoID:     l.ProdutoID,
			Nome:          l.Nome,
			Tipo:          string(l.Tipo),
			Quantidade:    l.Quantidade.Round(2),
			Receita:       l.Receita.Round(2),
			CustoUnitario: l.CustoUnitario.Round(2),
			CustoTotal:    l.CustoTotal.Round(2),
			LucroBruto:    l.LucroBruto.Round(2),
			Margem:        l.Margem.Round(4),
			Participacao:  l.Participacao,
		})
	}
	for _, nr := range rel.NaoResolvidos {
		resp.NaoResolvidos = append(resp.NaoResolvidos, dto.NaoResolvidoDTO{
			Tipo:   string(nr.Tipo),
			ID:     nr.RawID,
			Motivo: nr.Motivo,
		})
	}
	return resp
}
